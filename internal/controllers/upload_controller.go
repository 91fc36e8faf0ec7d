package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"fuelogistics/internal/blob"
)

const (
	maxUploadSize  = 5 << 20 // 5MB per file
	maxUploadFiles = 5
)

// allowedUploadTypes lists the content types accepted for attachments:
// images and common document formats.
var allowedUploadTypes = func() map[string]bool {
	types := []string{
		"image/jpeg",
		"image/jpg",
		"image/png",
		"image/gif",
		"image/webp",
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/vnd.ms-excel",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	}
	m := make(map[string]bool, len(types))
	for _, t := range types {
		m[t] = true
	}
	return m
}()

// UploadController pushes attachment files into the blob bucket. The bucket
// is an external collaborator; trips and drivers only store the returned
// attachment metadata.
type UploadController struct {
	blobs *blob.Store
}

func NewUploadController(blobs *blob.Store) *UploadController {
	return &UploadController{blobs: blobs}
}

// POST /api/upload (multipart field "file")
func (uc *UploadController) UploadFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}

	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File exceeds 5MB limit"})
		return
	}
	contentType := header.Header.Get("Content-Type")
	if !allowedUploadTypes[contentType] {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid file type. Only images and documents are allowed."})
		return
	}

	f, err := header.Open()
	if err != nil {
		logrus.WithError(err).Error("Error opening uploaded file.")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading file"})
		return
	}
	defer f.Close()

	attachment, err := uc.blobs.Upload(c.Request.Context(), header.Filename, f, header.Size, contentType)
	if err != nil {
		logrus.WithError(err).Error("Error uploading file to bucket.")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File uploaded successfully",
		"file":    attachment,
	})
}

// POST /api/upload/multiple (multipart field "files", up to 5)
func (uc *UploadController) UploadFiles(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No files uploaded"})
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No files uploaded"})
		return
	}
	if len(headers) > maxUploadFiles {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Too many files; limit is 5"})
		return
	}

	results := make([]interface{}, 0, len(headers))
	for _, header := range headers {
		if header.Size > maxUploadSize {
			c.JSON(http.StatusBadRequest, gin.H{"message": "File exceeds 5MB limit"})
			return
		}
		contentType := header.Header.Get("Content-Type")
		if !allowedUploadTypes[contentType] {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid file type. Only images and documents are allowed."})
			return
		}

		f, err := header.Open()
		if err != nil {
			logrus.WithError(err).Error("Error opening uploaded file.")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading files"})
			return
		}
		attachment, err := uc.blobs.Upload(c.Request.Context(), header.Filename, f, header.Size, contentType)
		f.Close()
		if err != nil {
			logrus.WithError(err).Error("Error uploading file to bucket.")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading files"})
			return
		}
		results = append(results, attachment)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Files uploaded successfully",
		"files":   results,
	})
}

// DELETE /api/files/:fileName
func (uc *UploadController) DeleteFile(c *gin.Context) {
	fileName := c.Param("fileName")
	if err := uc.blobs.Delete(c.Request.Context(), fileName); err != nil {
		logrus.WithError(err).WithField("file_name", fileName).Error("Error deleting file.")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting file"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}

// GET /api/files/:fileName/url
func (uc *UploadController) GetFileURL(c *gin.Context) {
	fileName := c.Param("fileName")
	c.JSON(http.StatusOK, gin.H{"url": uc.blobs.PublicURL(fileName)})
}
