package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ResumeService handles artifact storage housekeeping around the export
// pipeline: local static files for direct downloads, S3 keys for shared
// links.
type ResumeService struct {
	s3Service *S3Service
	outputDir string
}

func NewResumeService(s3Service *S3Service) *ResumeService {
	return &ResumeService{s3Service: s3Service, outputDir: "./static"}
}

// DisplayName turns an artifact filename into a human-readable resume name
// for listings, e.g. "jane-doe-resume.pdf" -> "Jane Doe Resume".
func (s *ResumeService) DisplayName(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return cases.Title(language.English).String(name)
}

// UploadArtifact stores the artifact under a collision-free name and
// returns that name with its download URL. With S3 configured the artifact
// goes under the resumes/ prefix; otherwise it lands in the local static
// directory served by the router.
func (s *ResumeService) UploadArtifact(artifact *Artifact) (string, string, error) {
	stored := s.GenerateUniqueFilename(filepath.Ext(artifact.Filename))

	if s.s3Service == nil {
		if err := s.EnsureOutputDirectory(); err != nil {
			return "", "", err
		}
		if err := os.WriteFile(s.GetArtifactPath(stored), artifact.Data, 0o644); err != nil {
			return "", "", fmt.Errorf("failed to store artifact locally: %v", err)
		}
		return stored, "/static/" + stored, nil
	}

	url, err := s.s3Service.UploadArtifact("resumes/"+stored, artifact)
	if err != nil {
		return "", "", err
	}
	return stored, url, nil
}

// DeleteArtifact removes a stored artifact by its stored filename.
func (s *ResumeService) DeleteArtifact(filename string) error {
	if s.s3Service == nil {
		return os.Remove(s.GetArtifactPath(filename))
	}
	return s.s3Service.DeleteFile("resumes/" + filename)
}

func (s *ResumeService) GeneratePresignedURL(filename string) (string, error) {
	if s.s3Service == nil {
		return "", fmt.Errorf("S3 storage not configured")
	}
	return s.s3Service.GeneratePresignedURL("resumes/" + filename)
}

func (s *ResumeService) EnsureOutputDirectory() error {
	return os.MkdirAll(s.outputDir, os.ModePerm)
}

// GenerateUniqueFilename names a stored artifact so repeated exports never
// overwrite each other.
func (s *ResumeService) GenerateUniqueFilename(extension string) string {
	return fmt.Sprintf("resume_%d%s", time.Now().UnixNano(), extension)
}

// GetArtifactPath resolves a stored filename inside the output directory.
// Only the base name is honored, so path segments in user input cannot
// escape the directory.
func (s *ResumeService) GetArtifactPath(filename string) string {
	return filepath.Join(s.outputDir, filepath.Base(filename))
}
