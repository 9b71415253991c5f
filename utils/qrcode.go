package utils

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const qrCodeSize = 256

func ProjectShareURL(baseURL string, projectID uuid.UUID) string {
	return fmt.Sprintf("%s/api/projects/%s", baseURL, projectID)
}

// ProjectQRCode renders the project's share URL as a PNG.
func ProjectQRCode(baseURL string, projectID uuid.UUID) ([]byte, error) {
	return qrcode.Encode(ProjectShareURL(baseURL, projectID), qrcode.Medium, qrCodeSize)
}
