package uploads

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var ErrNoFile = errors.New("no file provided")

// Store guarda imágenes en disco con nombre por timestamp y arma la
// URL pública con la base configurada.
type Store struct {
	dir     string
	baseURL string
	now     func() time.Time
}

func NewStore(dir, baseURL string) (*Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("upload dir required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &Store{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}, nil
}

// Dir expone el directorio para servirlo estático desde el router.
func (s *Store) Dir() string {
	return s.dir
}

// Save copia el archivo a disco y devuelve la URL pública.
// El nombre conserva la extensión del archivo subido: <unix-millis><ext>.
func (s *Store) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	if file == nil || header == nil {
		return "", ErrNoFile
	}

	ext := filepath.Ext(header.Filename)
	name := strconv.FormatInt(s.now().UnixMilli(), 10) + ext

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(dst.Name())
		return "", err
	}

	return s.baseURL + "/uploads/" + name, nil
}
