package media

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Resolver turns an artwork id into a fetchable URL for its source
// file. With R2 credentials it presigns bucket objects; otherwise it
// joins the id onto a static base URL (the arts/ directory of the
// original site).
type Resolver struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	baseURL string
}

// NewResolver creates a media resolver. The R2 client is only built
// when both key parts are configured; baseURL is the fallback either way.
func NewResolver(endpoint, bucket, accessKeyID, accessKeySecret, baseURL string) (*Resolver, error) {
	r := &Resolver{
		bucket:  bucket,
		baseURL: baseURL,
	}

	if accessKeyID != "" && accessKeySecret != "" {
		cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				accessKeyID,
				accessKeySecret,
				"",
			)),
			awsconfig.WithRegion("auto"),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load R2 config: %w", err)
		}

		r.client = s3.NewFromConfig(cfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
		r.presign = s3.NewPresignClient(r.client)
	}

	if r.client == nil && r.baseURL == "" {
		return nil, fmt.Errorf("no media source configured")
	}

	return r, nil
}

// IsPresigning reports whether URLs come from the bucket.
func (r *Resolver) IsPresigning() bool {
	return r.presign != nil
}

// ResolveURL returns a URL for the artwork's source file, valid for at
// least 30 minutes when presigned.
func (r *Resolver) ResolveURL(ctx context.Context, id string) (string, error) {
	if r.presign != nil {
		request, err := r.presign.PresignGetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(r.bucket),
			Key:    aws.String(id),
		}, s3.WithPresignExpires(30*time.Minute))
		if err == nil {
			return request.URL, nil
		}
		// Fall through to the static URL when presigning fails.
	}

	if r.baseURL == "" {
		return "", fmt.Errorf("failed to resolve media URL for %s", id)
	}

	return r.baseURL + url.PathEscape(id), nil
}

// ObjectExists checks whether the artwork's source file is in the bucket.
func (r *Resolver) ObjectExists(ctx context.Context, id string) (bool, error) {
	if r.client == nil {
		return false, nil
	}

	_, err := r.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(id),
	})
	if err != nil {
		return false, nil
	}
	return true, nil
}
