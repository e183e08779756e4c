package transfer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// NativeTransferer copies files with a buffered read/write loop.
type NativeTransferer struct {
	bufferSize int
}

// NewNativeTransferer creates a native transferer. bufferSize <= 0 selects
// a 1MB default, plenty for the band-sized GeoTIFFs this tool handles.
func NewNativeTransferer(bufferSize int) *NativeTransferer {
	if bufferSize <= 0 {
		bufferSize = 1 * 1024 * 1024
	}
	return &NativeTransferer{bufferSize: bufferSize}
}

func (n *NativeTransferer) Name() string {
	return "native"
}

func (n *NativeTransferer) Copy(src, dst string, opts Options) (*Result, error) {
	result := &Result{}
	start := time.Now()

	srcInfo, err := os.Stat(src)
	if err != nil {
		result.Error = fmt.Errorf("%w: %v", ErrSourceNotFound, err)
		return result, result.Error
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		result.Error = fmt.Errorf("%w: %v", ErrDestinationNotWritable, err)
		return result, result.Error
	}

	maxAttempts := opts.RetryAttempts + 1
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result.Attempts = attempt

		bytesCopied, err := n.copyFile(src, dst, srcInfo, opts)
		if err == nil {
			result.Success = true
			result.BytesCopied = bytesCopied
			result.Duration = time.Since(start)
			return result, nil
		}

		lastErr = err
		os.Remove(dst)

		if attempt < maxAttempts {
			time.Sleep(opts.RetryDelay)
		}
	}

	result.Error = fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
	result.Duration = time.Since(start)
	return result, result.Error
}

func (n *NativeTransferer) Move(src, dst string, opts Options) (*Result, error) {
	start := time.Now()

	srcInfo, err := os.Stat(src)
	if err != nil {
		result := &Result{Error: fmt.Errorf("%w: %v", ErrSourceNotFound, err)}
		return result, result.Error
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		result := &Result{Error: fmt.Errorf("%w: %v", ErrDestinationNotWritable, err)}
		return result, result.Error
	}

	// Rename is atomic and free when src and dst share a filesystem.
	if err := os.Rename(src, dst); err == nil {
		return &Result{
			Success:       true,
			BytesCopied:   srcInfo.Size(),
			Duration:      time.Since(start),
			Attempts:      1,
			SourceRemoved: true,
			Renamed:       true,
		}, nil
	}

	// Cross-device (or otherwise un-renameable): copy then remove.
	result, err := n.Copy(src, dst, opts)
	if err != nil {
		return result, err
	}

	if err := os.Remove(src); err != nil {
		// Destination is intact; report the move as done but keep the flag
		// accurate so callers can warn about the leftover source.
		result.SourceRemoved = false
		return result, nil
	}

	result.SourceRemoved = true
	return result, nil
}

func (n *NativeTransferer) copyFile(src, dst string, srcInfo os.FileInfo, opts Options) (int64, error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("unable to open source: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, fmt.Errorf("unable to create destination: %w", err)
	}

	buf := make([]byte, n.bufferSize)
	bytesCopied, err := io.CopyBuffer(dstFile, srcFile, buf)
	if err != nil {
		dstFile.Close()
		return bytesCopied, fmt.Errorf("copy failed: %w", err)
	}

	if err := dstFile.Sync(); err != nil {
		dstFile.Close()
		return bytesCopied, fmt.Errorf("sync failed: %w", err)
	}
	if err := dstFile.Close(); err != nil {
		return bytesCopied, fmt.Errorf("close failed: %w", err)
	}

	if err := applyAttrs(dst, srcInfo, opts); err != nil {
		return bytesCopied, err
	}

	return bytesCopied, nil
}

// applyAttrs carries source metadata over to the destination, the
// equivalent of a metadata-preserving copy.
func applyAttrs(dst string, srcInfo os.FileInfo, opts Options) error {
	mode := opts.FileMode
	if mode == 0 && opts.PreserveAttrs {
		mode = srcInfo.Mode().Perm()
	}
	if mode != 0 {
		if err := os.Chmod(dst, mode); err != nil {
			return fmt.Errorf("chmod failed: %w", err)
		}
	}

	if opts.PreserveAttrs {
		mtime := srcInfo.ModTime()
		if err := os.Chtimes(dst, mtime, mtime); err != nil {
			return fmt.Errorf("chtimes failed: %w", err)
		}
	}

	return nil
}
