package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

var (
	ErrBucketNotFound   = errors.New("bucket not found")
	ErrObjectNotFound   = errors.New("object not found")
	ErrPermissionDenied = errors.New("permission denied")
)

// Client wraps the Google Cloud Storage client with the existence checks and
// error translation the photo flows rely on. Bucket-not-found, object-not-found
// and permission-denied are surfaced as distinct errors so operators know
// whether to fix configuration, data, or IAM.
type Client struct {
	gcs *gcs.Client
}

// NewClient builds a storage client. Credentials come from the GCS_KEY JSON
// blob when set, otherwise from application default credentials.
func NewClient(ctx context.Context, credentialsJSON string) (*Client, error) {
	var opts []option.ClientOption
	if credentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}

	c, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &Client{gcs: c}, nil
}

func (c *Client) Close() error {
	return c.gcs.Close()
}

// Upload writes an object into the bucket, verifying the bucket exists first.
func (c *Client) Upload(ctx context.Context, bucket, object string, r io.Reader, contentType string) error {
	if err := c.checkBucket(ctx, bucket); err != nil {
		return err
	}

	w := c.gcs.Bucket(bucket).Object(object).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return fmt.Errorf("failed to upload object %q to bucket %q: %w", object, bucket, err)
	}
	if err := w.Close(); err != nil {
		return translate(err, bucket, object)
	}
	return nil
}

// SignedURL returns a V4 read-only signed URL for the object, valid for
// expiresIn from now. The bucket and the object are both verified to exist
// before a URL is requested.
func (c *Client) SignedURL(ctx context.Context, bucket, object string, expiresIn time.Duration) (string, error) {
	if err := c.checkBucket(ctx, bucket); err != nil {
		return "", err
	}

	if _, err := c.gcs.Bucket(bucket).Object(object).Attrs(ctx); err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return "", fmt.Errorf("%w: file %q not found in bucket %q", ErrObjectNotFound, object, bucket)
		}
		return "", translate(err, bucket, object)
	}

	url, err := c.gcs.Bucket(bucket).SignedURL(object, &gcs.SignedURLOptions{
		Scheme:  gcs.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(expiresIn),
	})
	if err != nil {
		return "", translate(err, bucket, object)
	}
	return url, nil
}

// FileExists reports whether the object exists in the bucket.
func (c *Client) FileExists(ctx context.Context, bucket, object string) (bool, error) {
	_, err := c.gcs.Bucket(bucket).Object(object).Attrs(ctx)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return false, nil
	}
	return false, translate(err, bucket, object)
}

// Delete removes the object from the bucket.
func (c *Client) Delete(ctx context.Context, bucket, object string) error {
	if err := c.gcs.Bucket(bucket).Object(object).Delete(ctx); err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return fmt.Errorf("%w: file %q not found in bucket %q", ErrObjectNotFound, object, bucket)
		}
		return translate(err, bucket, object)
	}
	return nil
}

func (c *Client) checkBucket(ctx context.Context, bucket string) error {
	if _, err := c.gcs.Bucket(bucket).Attrs(ctx); err != nil {
		if errors.Is(err, gcs.ErrBucketNotExist) {
			return fmt.Errorf("%w: bucket %q does not exist, check GCS_PHOTOS_BUCKET", ErrBucketNotFound, bucket)
		}
		return translate(err, bucket, "")
	}
	return nil
}

func translate(err error, bucket, object string) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && (apiErr.Code == 401 || apiErr.Code == 403) {
		return fmt.Errorf("%w: service account needs storage.objects.get on bucket %q, check IAM settings", ErrPermissionDenied, bucket)
	}
	if object != "" {
		return fmt.Errorf("storage operation on %q in bucket %q failed: %w", object, bucket, err)
	}
	return fmt.Errorf("storage operation on bucket %q failed: %w", bucket, err)
}
