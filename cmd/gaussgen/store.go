package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/gaussgen/blobstore"
	minioblob "github.com/hupe1980/gaussgen/blobstore/minio"
	s3blob "github.com/hupe1980/gaussgen/blobstore/s3"
)

type destKind int

const (
	destLocal destKind = iota
	destS3
	destMinIO
)

var (
	errMissingBucket = errors.New("destination has no bucket")
	errDDBNotS3      = errors.New("-ddb-table requires an s3:// destination")
)

// destination is a parsed -out value.
type destination struct {
	kind     destKind
	dir      string // destLocal
	endpoint string // destMinIO
	bucket   string
	prefix   string
}

// parseDestination maps an -out value to a destination. An empty value
// selects the directory holding the executable.
func parseDestination(out string) (destination, error) {
	switch {
	case out == "":
		exe, err := os.Executable()
		if err != nil {
			return destination{}, fmt.Errorf("locate executable: %w", err)
		}
		return destination{kind: destLocal, dir: filepath.Dir(exe)}, nil
	case strings.HasPrefix(out, "s3://"):
		u, err := url.Parse(out)
		if err != nil {
			return destination{}, err
		}
		if u.Host == "" {
			return destination{}, errMissingBucket
		}
		return destination{kind: destS3, bucket: u.Host, prefix: strings.Trim(u.Path, "/")}, nil
	case strings.HasPrefix(out, "minio://"):
		u, err := url.Parse(out)
		if err != nil {
			return destination{}, err
		}
		bucket, prefix, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
		if bucket == "" {
			return destination{}, errMissingBucket
		}
		return destination{
			kind:     destMinIO,
			endpoint: u.Host,
			bucket:   bucket,
			prefix:   strings.Trim(prefix, "/"),
		}, nil
	default:
		return destination{kind: destLocal, dir: out}, nil
	}
}

func (d destination) String() string {
	switch d.kind {
	case destS3:
		return "s3://" + d.bucket + "/" + d.prefix
	case destMinIO:
		return "minio://" + d.endpoint + "/" + d.bucket + "/" + d.prefix
	default:
		return d.dir
	}
}

// openStore builds the store for d. MinIO credentials come from
// MINIO_ACCESS_KEY and MINIO_SECRET_KEY, TLS from MINIO_SECURE=true.
// AWS settings come from the default config chain.
func openStore(ctx context.Context, d destination, ddbTable string, getenv func(string) string) (blobstore.BlobStore, error) {
	if ddbTable != "" && d.kind != destS3 {
		return nil, errDDBNotS3
	}

	switch d.kind {
	case destS3:
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		store := s3blob.NewStore(awss3.NewFromConfig(cfg), d.bucket, d.prefix)
		if ddbTable == "" {
			return store, nil
		}
		return s3blob.NewDDBCommitStore(store, dynamodb.NewFromConfig(cfg), ddbTable, store.URI()), nil
	case destMinIO:
		client, err := minio.New(d.endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(getenv("MINIO_ACCESS_KEY"), getenv("MINIO_SECRET_KEY"), ""),
			Secure: getenv("MINIO_SECURE") == "true",
		})
		if err != nil {
			return nil, fmt.Errorf("minio client: %w", err)
		}
		return minioblob.NewStore(client, d.bucket, d.prefix), nil
	default:
		return blobstore.NewLocalStore(d.dir), nil
	}
}
