package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Load подгружает файлы из ENV_FILE (через запятую, по умолчанию .env) и применяет флаг -port.
// Отсутствующие файлы пропускаются, возвращаются только реально прочитанные.
// Переменные, уже выставленные в окружении, не перезаписываются.
func Load() ([]string, error) {
	files := envFiles(os.Getenv("ENV_FILE"))

	loaded := make([]string, 0, len(files))
	for _, file := range files {
		err := godotenv.Load(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return loaded, fmt.Errorf("load %s: %w", file, err)
		}
		loaded = append(loaded, file)
	}

	var portFlag string
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.Parse()

	if portFlag != "" {
		err := os.Setenv("PORT", portFlag)
		if err != nil {
			return loaded, fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return loaded, nil
}

func envFiles(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{defaultEnvFile}
	}

	var files []string
	for _, file := range strings.Split(raw, ",") {
		if file = strings.TrimSpace(file); file != "" {
			files = append(files, file)
		}
	}
	return files
}
