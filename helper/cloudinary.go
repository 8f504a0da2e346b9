package helper

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
)

func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Cloudinary init failed: %v", err)
	}
	return cld
}

// GenerateUploadSignature signs a direct-upload request so the SPA can push
// product images straight to Cloudinary.
func GenerateUploadSignature(folder string) (map[string]any, error) {
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	if apiSecret == "" || apiKey == "" || cloudName == "" {
		return nil, fmt.Errorf("cloudinary credentials are not configured")
	}

	timestamp := time.Now().Unix()
	toSign := fmt.Sprintf("folder=%s&timestamp=%d%s", folder, timestamp, apiSecret)
	h := sha1.Sum([]byte(toSign))

	return map[string]any{
		"signature": hex.EncodeToString(h[:]),
		"timestamp": timestamp,
		"apiKey":    apiKey,
		"cloudName": cloudName,
		"folder":    folder,
	}, nil
}
