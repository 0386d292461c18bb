package gitcore

import (
	"bytes"
	"compress/zlib"
	"crypto/sha1" //nolint:gosec // SHA-1 is the object-identity algorithm by format definition
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// maxDecompressedSize caps the size of any single decompressed object, so a
// corrupt or adversarial loose object can't inflate without bound.
const maxDecompressedSize = 256 * 1024 * 1024

// hashObject computes the storage image and identity hash for kind+payload.
// The storage image is "<kind> <len>\0" followed by payload verbatim; the
// identity is the hex SHA-1 of that image. This is the one place the hash
// algorithm is computed, so substituting it later touches a single function.
func hashObject(kind string, payload []byte) (Hash, []byte) {
	header := fmt.Sprintf("%s %d\x00", kind, len(payload))
	storage := make([]byte, 0, len(header)+len(payload))
	storage = append(storage, header...)
	storage = append(storage, payload...)

	sum := sha1.Sum(storage) //nolint:gosec // see above
	return Hash(fmt.Sprintf("%x", sum)), storage
}

// objectPath returns the on-disk loose-object path for id under gitDir,
// using the two-level hex fan-out objects/<2>/<38>.
func objectPath(gitDir string, id Hash) string {
	s := string(id)
	return filepath.Join(gitDir, "objects", s[:2], s[2:])
}

// storeObject writes kind/payload to the object store and returns its id.
// Writes are idempotent: an object already on disk is left untouched. The
// encoded bytes are written to a temp file and renamed into place, which is
// atomic enough given the single-process assumption in §5.
func storeObject(gitDir string, kind string, payload []byte) (Hash, error) {
	id, storage := hashObject(kind, payload)
	path := objectPath(gitDir, id)

	if _, err := os.Stat(path); err == nil {
		return id, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storeObject: %w", err)
	}

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(storage); err != nil {
		_ = zw.Close()
		return "", fmt.Errorf("storeObject: deflating %s: %w", id, err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("storeObject: deflating %s: %w", id, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-object-*")
	if err != nil {
		return "", fmt.Errorf("storeObject: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("storeObject: writing %s: %w", id, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("storeObject: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("storeObject: %w", err)
	}

	return id, nil
}

// readObjectRaw reads and inflates a loose object, returning its kind and
// payload. A missing file is ErrObjectMissing; a file that fails to
// decompress or frame correctly is ErrObjectCorrupt.
func readObjectRaw(gitDir string, id Hash) (kind string, payload []byte, err error) {
	path := objectPath(gitDir, id)
	//nolint:gosec // G304: path is derived from a caller-supplied object id under the repository
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("%w: %s", ErrObjectMissing, id)
		}
		return "", nil, fmt.Errorf("readObjectRaw: %w", err)
	}
	defer func() { _ = f.Close() }()

	zr, err := zlib.NewReader(f)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s: %v", ErrObjectCorrupt, id, err)
	}
	defer func() { _ = zr.Close() }()

	data, err := io.ReadAll(io.LimitReader(zr, maxDecompressedSize+1))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s: %v", ErrObjectCorrupt, id, err)
	}
	if len(data) > maxDecompressedSize {
		return "", nil, fmt.Errorf("%w: %s: exceeds maximum object size", ErrObjectCorrupt, id)
	}

	nullIdx := bytes.IndexByte(data, 0)
	if nullIdx == -1 {
		return "", nil, fmt.Errorf("%w: %s: missing header terminator", ErrObjectCorrupt, id)
	}

	header := string(data[:nullIdx])
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return "", nil, fmt.Errorf("%w: %s: invalid header %q", ErrObjectCorrupt, id, header)
	}

	return parts[0], data[nullIdx+1:], nil
}
