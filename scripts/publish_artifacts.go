package main

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"github.com/minio/minio-go/v7"

	"alfredoptarigan/salary-estimator/internal/config"
	"alfredoptarigan/salary-estimator/internal/logger"
	"alfredoptarigan/salary-estimator/internal/services"
)

// Validates the local dataset and model artifact with the server's loaders,
// then uploads both to the configured MinIO bucket.
func main() {
	cfg := config.Load()
	if err := logger.Init(logger.Config{Level: cfg.Log.Level, Format: "console"}); err != nil {
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar

	ctx := context.Background()
	local := services.NewLocalStore(cfg.Storage.Root)

	res, err := services.LoadResources(ctx, local,
		cfg.Data.DatasetPath,
		cfg.Data.ModelPath,
		services.NewSynthesizer(cfg.Data.SynthSeed),
	)
	if err != nil {
		log.Fatalf("local artifacts are not loadable: %v", err)
	}
	log.Infof("validated %d dataset rows and a %s model with %d features",
		res.Dataset.Len(), res.Artifact.Regressor.Kind(), len(res.Artifact.FeatureNames))

	for col, values := range res.VocabularyGaps() {
		log.Warnf("%s has values the model was not trained on: %v", col, values)
	}

	client, err := config.InitObjectStore(cfg)
	if err != nil {
		log.Fatalf("failed to connect to object store: %v", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Minio.Bucket)
	if err != nil {
		log.Fatalf("failed to check bucket %s: %v", cfg.Minio.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Minio.Bucket, minio.MakeBucketOptions{}); err != nil {
			log.Fatalf("failed to create bucket %s: %v", cfg.Minio.Bucket, err)
		}
		log.Infof("created bucket %s", cfg.Minio.Bucket)
	}

	for _, name := range []string{cfg.Data.DatasetPath, cfg.Data.ModelPath} {
		key := path.Join(cfg.Minio.Prefix, name)
		src := filepath.Join(cfg.Storage.Root, filepath.FromSlash(name))

		info, err := client.FPutObject(ctx, cfg.Minio.Bucket, key, src, minio.PutObjectOptions{})
		if err != nil {
			log.Fatalf("failed to upload %s: %v", src, err)
		}
		log.Infof("uploaded %s to %s/%s (%d bytes)", src, cfg.Minio.Bucket, key, info.Size)
	}

	log.Info("publish completed")
}
