//go:build unit

package s3

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	body   string
}

func newFakeS3(t *testing.T) (*httptest.Server, func() []recordedRequest) {
	t.Helper()
	var (
		mu       sync.Mutex
		requests []recordedRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		requests = append(requests, recordedRequest{method: r.Method, path: r.URL.Path, body: string(body)})
		mu.Unlock()

		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	return srv, func() []recordedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]recordedRequest(nil), requests...)
	}
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	srv, recorded := newFakeS3(t)

	store, err := New(ctx, Config{
		Bucket:          "pets",
		Region:          "us-east-1",
		Endpoint:        srv.URL,
		PathStyle:       true,
		AccessKeyID:     "test",
		SecretAccessKey: "test",
		HTTPClient:      srv.Client(),
	})
	require.NoError(t, err)

	url, err := store.Save(ctx, "owner_1_dog.png", bytes.NewReader([]byte("png-bytes")), "image/png")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/pets/owner_1_dog.png", url)

	require.NoError(t, store.Remove(ctx, url))
	require.NoError(t, store.Remove(ctx, "/static/uploads/pets/other.png"), "foreign URLs are ignored")

	reqs := recorded()
	require.Len(t, reqs, 2)
	assert.Equal(t, http.MethodPut, reqs[0].method)
	assert.Equal(t, "/pets/owner_1_dog.png", reqs[0].path)
	assert.Contains(t, reqs[0].body, "png-bytes")
	assert.Equal(t, http.MethodDelete, reqs[1].method)
	assert.Equal(t, "/pets/owner_1_dog.png", reqs[1].path)
}

func TestNewRequiresBucket(t *testing.T) {
	_, err := New(context.Background(), Config{})
	assert.Error(t, err)
}

func TestPublicBaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{name: "aws", cfg: Config{Bucket: "pets"}, want: "https://pets.s3.eu-west-1.amazonaws.com"},
		{name: "path style endpoint", cfg: Config{Bucket: "pets", Endpoint: "http://minio:9000/", PathStyle: true}, want: "http://minio:9000/pets"},
		{name: "virtual host endpoint", cfg: Config{Bucket: "pets", Endpoint: "https://storage.example.com"}, want: "https://pets.storage.example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, publicBaseURL(tt.cfg, "eu-west-1"))
		})
	}
}
