package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ProofStore implements ports.ProofStore on an S3 bucket. Returned
// references are virtual-hosted object URLs.
type ProofStore struct {
	client putObjectAPI
	bucket string
	region string
}

// NewProofStore loads the default AWS credential chain for region.
func NewProofStore(ctx context.Context, bucket, region string) (*ProofStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &ProofStore{client: s3.NewFromConfig(cfg), bucket: bucket, region: region}, nil
}

func (s *ProofStore) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	// Buffered so the SDK can sign a seekable payload; size is already bounded.
	data, err := io.ReadAll(io.LimitReader(body, size+1))
	if err != nil {
		return "", fmt.Errorf("read proof body: %w", err)
	}
	if int64(len(data)) != size {
		return "", fmt.Errorf("proof body is %d bytes, declared %d", len(data), size)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s to S3: %w", key, err)
	}
	return s.URL(key), nil
}

// URL returns the public object URL for key.
func (s *ProofStore) URL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
