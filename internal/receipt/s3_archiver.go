package receipt

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

// PutObjectAPI is the part of the S3 client the archiver needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ErrArchiveUnavailable is returned while the circuit breaker is open.
var ErrArchiveUnavailable = errors.New("receipt archive temporarily unavailable")

// s3Archiver uploads receipts to an S3 bucket behind a circuit breaker.
type s3Archiver struct {
	client PutObjectAPI
	bucket string
	prefix string
	cb     *gobreaker.CircuitBreaker
	logger zerolog.Logger
}

// NewS3Archiver creates an archiver using the default AWS credential chain.
func NewS3Archiver(ctx context.Context, bucket, region, prefix string, logger zerolog.Logger) (Printer, error) {
	logger = logger.With().Str("component", "s3-receipt-archiver").Logger()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 receipt archiver initialised")

	return NewS3ArchiverWithClient(s3.NewFromConfig(cfg), bucket, prefix, logger), nil
}

// NewS3ArchiverWithClient creates an archiver around an existing client.
func NewS3ArchiverWithClient(client PutObjectAPI, bucket, prefix string, logger zerolog.Logger) Printer {
	settings := gobreaker.Settings{
		Name:        "ReceiptArchive",
		MaxRequests: 3,
		Interval:    5 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn().
				Str("name", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	}

	return &s3Archiver{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		cb:     gobreaker.NewCircuitBreaker(settings),
		logger: logger,
	}
}

func (a *s3Archiver) Name() string { return "s3" }

// Key is the object key for a receipt.
func (a *s3Archiver) Key(r Receipt) string {
	if a.prefix == "" {
		return FileName(r)
	}
	return path.Join(a.prefix, FileName(r))
}

func (a *s3Archiver) Print(ctx context.Context, r Receipt) error {
	key := a.Key(r)

	_, err := a.cb.Execute(func() (interface{}, error) {
		return a.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(a.bucket),
			Key:         aws.String(key),
			Body:        strings.NewReader(r.Text),
			ContentType: aws.String("text/plain; charset=utf-8"),
		})
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			a.logger.Warn().Str("key", key).Msg("circuit breaker open, receipt not archived")
			return ErrArchiveUnavailable
		}
		a.logger.Error().
			Err(err).
			Str("bucket", a.bucket).
			Str("key", key).
			Msg("failed to archive receipt")
		return fmt.Errorf("failed to put receipt to S3 (bucket=%s, key=%s): %w", a.bucket, key, err)
	}

	a.logger.Debug().Str("bucket", a.bucket).Str("key", key).Msg("receipt archived")
	return nil
}
