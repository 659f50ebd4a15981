package controllers

import (
	"encoding/json"
	"net/http"

	"sponsorlink_server/services"
)

// S3Controller issues presigned URLs for profile image upload and read
type S3Controller struct {
	S3Service *services.S3Service
}

// NewS3Controller creates a new S3Controller instance
func NewS3Controller(s3Service *services.S3Service) *S3Controller {
	return &S3Controller{S3Service: s3Service}
}

// HandleGenerateUploadURL generates a presigned URL for uploading an image.
// The returned key is echoed back on profile submission.
func (sc *S3Controller) HandleGenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName" validate:"required"`
		FileType string `json:"fileType" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	url, key, err := sc.S3Service.GenerateUploadURL(r.Context(), payload.FileName, payload.FileType)
	if err != nil {
		respondError(w, err, "Failed to generate upload URL")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"url": url, "key": key})
}

// HandleGenerateReadURL generates a presigned URL for reading a stored object
func (sc *S3Controller) HandleGenerateReadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, `{"error": "key is required"}`, http.StatusBadRequest)
		return
	}

	url, err := sc.S3Service.GenerateReadURL(r.Context(), key)
	if err != nil {
		respondError(w, err, "Failed to generate read URL")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"url": url})
}
