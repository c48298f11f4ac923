package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// BinaryName is the executable inside every release archive.
const BinaryName = "thermoviz"

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// Stage of an update, reported in order.
type Stage string

const (
	StageCheck    Stage = "check"
	StageDownload Stage = "download"
	StageVerify   Stage = "verify"
	StageExtract  Stage = "extract"
	StageApply    Stage = "apply"
	StageDone     Stage = "done"
)

// UpdateInput selects the release to install. An empty TargetVersion
// means the latest release.
type UpdateInput struct {
	CurrentVersion string
	TargetVersion  string
}

type UpdateProgress struct {
	Stage   Stage
	Message string
}

// Update downloads the release archive for this platform, checks it
// against the release's checksums.txt and replaces the running binary.
// progress may be nil.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) error {
	report := func(s Stage, format string, args ...any) {
		if progress != nil {
			progress(UpdateProgress{Stage: s, Message: fmt.Sprintf(format, args...)})
		}
	}

	if _, ok := canonicalVersion(input.CurrentVersion); !ok {
		return ErrDevBuild
	}

	tag := input.TargetVersion
	if tag == "" {
		report(StageCheck, "Checking for the latest release...")
		res, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if !res.UpdateAvailable {
			return ErrAlreadyLatest
		}
		tag = res.LatestVersion
	}

	asset, err := assetName()
	if err != nil {
		return err
	}

	report(StageDownload, "Downloading %s %s...", BinaryName, tag)
	archive, err := c.get(ctx, c.releaseFileURL(tag, asset), "")
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	report(StageVerify, "Verifying checksum...")
	sums, err := c.get(ctx, c.releaseFileURL(tag, "checksums.txt"), "")
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	want, ok := parseChecksums(sums)[asset]
	if !ok {
		return fmt.Errorf("%w: checksums.txt has no entry for %s", ErrChecksum, asset)
	}
	if err := verifyChecksum(archive, want); err != nil {
		return err
	}

	report(StageExtract, "Extracting %s...", BinaryName)
	bin, err := extractBinary(archive, asset)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	report(StageApply, "Replacing the installed binary...")
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	sum := sha256.Sum256(bin)
	if err := applyUpdate(bin, target, sum[:]); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	report(StageDone, "Updated to %s", tag)
	return nil
}

func (c *Checker) releaseFileURL(tag, name string) string {
	return fmt.Sprintf("%s/%s/%s/releases/download/%s/%s",
		strings.TrimRight(c.downloadBaseURL, "/"), c.owner, c.repo, tag, name)
}

// releaseOS is how goreleaser names each supported OS. macOS ships a
// single universal archive.
var releaseOS = map[string]struct {
	label     string
	ext       string
	universal bool
}{
	"darwin":  {label: "Darwin", ext: ".tar.gz", universal: true},
	"linux":   {label: "Linux", ext: ".tar.gz"},
	"windows": {label: "Windows", ext: ".zip"},
}

var releaseArch = map[string]string{
	"amd64": "x86_64",
	"arm64": "arm64",
	"386":   "i386",
}

func assetName() (string, error) {
	return assetNameFor(runtime.GOOS, runtime.GOARCH)
}

func assetNameFor(goos, goarch string) (string, error) {
	osInfo, ok := releaseOS[goos]
	if !ok {
		return "", fmt.Errorf("unsupported operating system: %s", goos)
	}
	arch := "all"
	if !osInfo.universal {
		if arch, ok = releaseArch[goarch]; !ok {
			return "", fmt.Errorf("unsupported architecture: %s", goarch)
		}
	}
	return fmt.Sprintf("%s_%s_%s%s", BinaryName, osInfo.label, arch, osInfo.ext), nil
}

// parseChecksums reads "<sha256>  <file>" lines, skipping anything else.
func parseChecksums(data []byte) map[string]string {
	sums := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		if f := strings.Fields(line); len(f) == 2 {
			sums[f[1]] = f[0]
		}
	}
	return sums
}

func verifyChecksum(data []byte, wantHex string) error {
	sum := sha256.Sum256(data)
	if got := hex.EncodeToString(sum[:]); got != wantHex {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, wantHex, got)
	}
	return nil
}

func extractBinary(archive []byte, asset string) ([]byte, error) {
	if strings.HasSuffix(asset, ".zip") {
		return findInZip(archive, BinaryName+".exe")
	}
	return findInTarGz(archive, BinaryName)
}

func findInTarGz(data []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("binary %q not found in archive", name)
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == name {
			return io.ReadAll(tr)
		}
	}
}

func findInZip(data []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range zr.File {
		if filepath.Base(f.Name) != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}

// applyUpdate writes bin next to target, re-reads it to confirm the hash,
// then renames it over target keeping target's permissions.
func applyUpdate(bin []byte, target string, wantHash []byte) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+BinaryName+"-update-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(bin); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	written, err := os.ReadFile(tmpPath)
	if err != nil {
		return fmt.Errorf("re-read temp file: %w", err)
	}
	if sum := sha256.Sum256(written); !bytes.Equal(sum[:], wantHash) {
		return fmt.Errorf("%w: temp file changed after write", ErrChecksum)
	}

	if err := os.Chmod(tmpPath, info.Mode().Perm()); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
