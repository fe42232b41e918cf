package analyzer

import (
	"os"
	"path/filepath"
	"runtime"
)

// PathEnvVar overrides analyzer runtime discovery when set. It may point
// at the runtime directory or directly at its manifest.yaml.
const PathEnvVar = "KQL_LANGUAGE_TOOLS_PATH"

// platformDir is the conventional platform/architecture-keyed
// subdirectory searched for the runtime, e.g. "analyzer/linux-amd64".
func platformDir() string {
	return filepath.Join("analyzer", runtime.GOOS+"-"+runtime.GOARCH)
}

// searchDirs returns the candidate runtime directories in priority
// order: env override, executable-adjacent, platform-keyed subdirectory
// of the executable directory, then the current working directory.
func searchDirs() []string {
	var dirs []string

	if env := os.Getenv(PathEnvVar); env != "" {
		if filepath.Base(env) == ManifestFileName {
			env = filepath.Dir(env)
		}
		dirs = append(dirs, env)
	}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		dirs = append(dirs, exeDir, filepath.Join(exeDir, platformDir()))
	}

	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, filepath.Join(cwd, platformDir()), cwd)
	}

	return dirs
}

// FindRuntimeDir locates the first directory on the search path that
// holds an analyzer manifest. Returns "" and the searched paths when
// none is found.
func FindRuntimeDir() (string, []string) {
	dirs := searchDirs()
	for _, dir := range dirs {
		if _, err := os.Stat(filepath.Join(dir, ManifestFileName)); err == nil {
			return dir, dirs
		}
	}
	return "", dirs
}

// IsAvailable reports whether an analyzer runtime can be located. It
// does not load or validate the runtime.
func IsAvailable() bool {
	dir, _ := FindRuntimeDir()
	return dir != ""
}

// RuntimePath returns the manifest path of the discovered runtime, or
// "".
func RuntimePath() string {
	dir, _ := FindRuntimeDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, ManifestFileName)
}
