package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"alfredoptarigan/salary-estimator/internal/models"
	"alfredoptarigan/salary-estimator/internal/repositories"
	"alfredoptarigan/salary-estimator/internal/testutil"
)

func newTestResources(t *testing.T, file models.ArtifactFile) *Resources {
	t.Helper()

	records, err := ParseDataset(strings.NewReader(testutil.SalaryCSV))
	require.NoError(t, err)
	NewSynthesizer(DefaultSynthSeed).Augment(records)

	artifact, err := ParseArtifact(bytes.NewReader(testutil.JSON(file)))
	require.NoError(t, err)

	return &Resources{
		Dataset:  repositories.NewDatasetRepository(records),
		Artifact: artifact,
	}
}

func testQuery(department string, yearsExperience float64) models.QueryRecord {
	return testutil.Request(department, yearsExperience).ToQuery()
}
