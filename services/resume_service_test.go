package services

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumekit/export"
)

func TestUploadArtifactLocal(t *testing.T) {
	svc := &ResumeService{outputDir: t.TempDir()}
	artifact := &Artifact{Filename: "jane-doe-resume.pdf", MIME: export.MIMEPDF, Data: []byte("%PDF-fake")}

	stored, url, err := svc.UploadArtifact(artifact)
	require.NoError(t, err)

	assert.Regexp(t, `^resume_\d+\.pdf$`, stored)
	assert.Equal(t, "/static/"+stored, url)

	data, err := os.ReadFile(svc.GetArtifactPath(stored))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), data)
}

func TestDeleteArtifactLocal(t *testing.T) {
	svc := &ResumeService{outputDir: t.TempDir()}

	stored, _, err := svc.UploadArtifact(&Artifact{Filename: "r.pdf", Data: []byte("x")})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteArtifact(stored))
	_, err = os.Stat(svc.GetArtifactPath(stored))
	assert.True(t, os.IsNotExist(err))

	err = svc.DeleteArtifact("never-stored.pdf")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestGetArtifactPathStripsDirectories(t *testing.T) {
	svc := NewResumeService(nil)

	assert.Equal(t, filepath.Join("./static", "x.pdf"), svc.GetArtifactPath("../../x.pdf"))
	assert.Equal(t, filepath.Join("./static", "x.pdf"), svc.GetArtifactPath("/etc/x.pdf"))
}

func TestResumeServiceDisplayName(t *testing.T) {
	svc := NewResumeService(nil)

	assert.Equal(t, "Jane Doe Resume", svc.DisplayName("jane-doe-resume.pdf"))
	assert.Equal(t, "Resume 12345", svc.DisplayName("resume_12345.docx"))
}
