package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"

	"parfumy_back_end/internal/database"
)

// UploadProductImage pousse l'image d'un produit vers MinIO et retourne l'URL
// externe à stocker dans le champ image du produit.
func UploadProductImage(ctx context.Context, header *multipart.FileHeader) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	bucket := os.Getenv("MINIO_BUCKET")
	ext := filepath.Ext(header.Filename)
	objectName := fmt.Sprintf("products/%d%s", time.Now().UnixNano(), ext)

	_, err = database.MinIO.PutObject(ctx, bucket, objectName, file, header.Size,
		minio.PutObjectOptions{ContentType: header.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("http://%s/%s/%s", os.Getenv("MINIO_ENDPOINT"), bucket, objectName), nil
}
