package handlers

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"ambe.com/fieldops/fieldops/model"
	"ambe.com/fieldops/infrastructure/filesystem"
)

// Capture photos arrive inline as data URLs. Offloading moves the bytes to
// S3 and leaves an s3:// reference on the record, keeping the attendance
// table small.
func offloadPhotos(ctx context.Context, bucket string, records []model.AttendanceRecord) error {
	for i := range records {
		r := &records[i]
		if !strings.HasPrefix(r.PhotoURL, "data:") {
			continue
		}

		data, ext, err := decodeDataURL(r.PhotoURL)
		if err != nil {
			return fmt.Errorf("record %s: %w", r.ID, err)
		}

		key := fmt.Sprintf("photos/%s/%s/%s%s", r.SiteID, r.Date, r.ID, ext)
		if err := filesystem.WriteFile(bucket, key, ctx, data, "image/"+strings.TrimPrefix(ext, ".")); err != nil {
			return err
		}

		r.PhotoURL = fmt.Sprintf("s3://%s/%s", bucket, key)
	}

	return nil
}

func decodeDataURL(dataURL string) ([]byte, string, error) {
	// data:image/jpeg;base64,<payload>
	header, payload, found := strings.Cut(dataURL, ",")
	if !found || !strings.Contains(header, ";base64") {
		return nil, "", fmt.Errorf("not a base64 data url")
	}

	ext := ".jpg"
	if strings.Contains(header, "image/png") {
		ext = ".png"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("decode photo payload: %w", err)
	}

	return data, ext, nil
}
