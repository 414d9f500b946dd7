package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gaussgen"
	"github.com/hupe1980/gaussgen/blobstore"
	minioblob "github.com/hupe1980/gaussgen/blobstore/minio"
)

func noEnv(string) string { return "" }

func TestParseDestination(t *testing.T) {
	tests := []struct {
		out  string
		want destination
	}{
		{out: "./data", want: destination{kind: destLocal, dir: "./data"}},
		{out: "s3://bucket", want: destination{kind: destS3, bucket: "bucket"}},
		{out: "s3://bucket/fixtures/kmeans/", want: destination{kind: destS3, bucket: "bucket", prefix: "fixtures/kmeans"}},
		{out: "minio://localhost:9000/bucket", want: destination{kind: destMinIO, endpoint: "localhost:9000", bucket: "bucket"}},
		{out: "minio://localhost:9000/bucket/a/b", want: destination{kind: destMinIO, endpoint: "localhost:9000", bucket: "bucket", prefix: "a/b"}},
	}

	for _, tt := range tests {
		t.Run(tt.out, func(t *testing.T) {
			got, err := parseDestination(tt.out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDestination_Default(t *testing.T) {
	got, err := parseDestination("")
	require.NoError(t, err)

	exe, err := os.Executable()
	require.NoError(t, err)
	assert.Equal(t, destLocal, got.kind)
	assert.Equal(t, filepath.Dir(exe), got.dir)
}

func TestParseDestination_MissingBucket(t *testing.T) {
	for _, out := range []string{"s3://", "minio://localhost:9000", "minio://localhost:9000/"} {
		_, err := parseDestination(out)
		assert.ErrorIs(t, err, errMissingBucket, out)
	}
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	dir := t.TempDir()
	store, err := openStore(ctx, destination{kind: destLocal, dir: dir}, "", noEnv)
	require.NoError(t, err)
	require.IsType(t, &blobstore.LocalStore{}, store)
	assert.Equal(t, dir, store.(*blobstore.LocalStore).Root())

	store, err = openStore(ctx, destination{kind: destMinIO, endpoint: "localhost:9000", bucket: "b"}, "", noEnv)
	require.NoError(t, err)
	assert.IsType(t, &minioblob.Store{}, store)

	_, err = openStore(ctx, destination{kind: destLocal, dir: t.TempDir()}, "commits", noEnv)
	assert.ErrorIs(t, err, errDDBNotS3)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	var stderr bytes.Buffer

	err := run(context.Background(), []string{"-n", "10", "-k", "3", "-out", dir, "-manifest"}, &stderr, noEnv)
	require.NoError(t, err)

	points, err := os.ReadFile(filepath.Join(dir, gaussgen.PointsFileName))
	require.NoError(t, err)
	assert.Equal(t, "5.386885\n", string(points[:9]))

	centroids, err := os.ReadFile(filepath.Join(dir, gaussgen.CentroidsFileName))
	require.NoError(t, err)
	assert.Equal(t, "4.749080\n15.901429\n25.463988\n", string(centroids))

	assert.FileExists(t, filepath.Join(dir, "MANIFEST.json"))
	assert.FileExists(t, filepath.Join(dir, "CURRENT"))
	assert.Contains(t, stderr.String(), "artifact saved")
}

func TestRun_JSONCompressed(t *testing.T) {
	dir := t.TempDir()
	var stderr bytes.Buffer

	err := run(context.Background(), []string{"-n", "10", "-k", "3", "-out", dir, "-compress", "zstd", "-log-format", "json", "-v"}, &stderr, noEnv)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, gaussgen.PointsFileName+".zst"))
	assert.Contains(t, stderr.String(), `"msg":"artifact details"`)
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{name: "bad flag", args: []string{"-bogus"}},
		{name: "bad compression", args: []string{"-out", dir, "-compress", "bzip2"}},
		{name: "bad log format", args: []string{"-out", dir, "-log-format", "xml"}},
		{name: "ddb without s3", args: []string{"-out", dir, "-ddb-table", "t"}},
		{name: "zero clusters", args: []string{"-out", dir, "-k", "0"}},
		{name: "negative points", args: []string{"-out", dir, "-n", "-5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			assert.Error(t, run(context.Background(), tt.args, &stderr, noEnv))
		})
	}
}

func TestRun_BadLogFormatReported(t *testing.T) {
	var stderr bytes.Buffer

	err := run(context.Background(), []string{"-out", t.TempDir(), "-log-format", "xml"}, &stderr, noEnv)
	assert.ErrorIs(t, err, errLogFormat)
	assert.Contains(t, stderr.String(), errLogFormat.Error())
}
