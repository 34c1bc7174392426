package rules

// ImportLanguage groups the extraction patterns for one language family.
type ImportLanguage struct {
	Name       string
	Extensions []string
	// Patterns capture the imported module in group 1.
	Patterns []string
	// Multiline anchors ^ at every line start.
	Multiline bool
	// BaseSegment keeps only the part before the first '/'.
	BaseSegment bool
	Builtins    map[string]struct{}
	// SkipPrefixes drop modules starting with any of these.
	SkipPrefixes []string
}

// ImportExcludedDirs are never descended into by the import verifier.
var ImportExcludedDirs = []string{
	"node_modules", "vendor", ".git", "dist", "build", "target", "__pycache__", ".venv", "venv",
}

// VerificationDirs hold one markdown document per verified library.
var VerificationDirs = []string{
	"docs/api-verification",
	"docs/api-verifications",
	"docs/verified-apis",
	".api-verification",
}

// ImportLanguages returns the extraction tables in scan order.
func ImportLanguages() []ImportLanguage {
	return []ImportLanguage{
		{
			Name:       "python",
			Extensions: []string{".py"},
			Patterns: []string{
				`^import\s+(\w+)`,
				`^from\s+(\w+)`,
			},
			Multiline:    true,
			Builtins:     set(pythonStdlib...),
			SkipPrefixes: []string{"_"},
		},
		{
			Name:       "node",
			Extensions: []string{".js", ".ts", ".jsx", ".tsx", ".mjs", ".cjs"},
			Patterns: []string{
				`from\s+['"]([^'"./][^'"]*)['"]`,
				`require\s*\(\s*['"]([^'"./][^'"]*)['"]`,
				`import\s*\(\s*['"]([^'"./][^'"]*)['"]`,
			},
			BaseSegment:  true,
			Builtins:     set(nodeBuiltins...),
			SkipPrefixes: []string{"@types"},
		},
		{
			Name:       "rust",
			Extensions: []string{".rs"},
			Patterns: []string{
				`^use\s+(\w+)::`,
				`^extern\s+crate\s+(\w+)`,
			},
			Multiline: true,
			Builtins:  set("std", "core", "alloc", "proc_macro", "test", "crate", "self", "super"),
		},
	}
}

func set(names ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}

	return s
}

var pythonStdlib = []string{
	"os", "sys", "re", "json", "typing", "pathlib", "collections",
	"datetime", "time", "math", "random", "itertools", "functools",
	"contextlib", "abc", "io", "string", "copy", "enum", "dataclasses",
	"asyncio", "concurrent", "threading", "multiprocessing", "subprocess",
	"logging", "warnings", "traceback", "unittest", "pytest", "argparse",
	"configparser", "csv", "xml", "html", "urllib", "http", "email",
	"hashlib", "hmac", "secrets", "base64", "binascii", "struct",
	"sqlite3", "shelve", "dbm", "gzip", "zipfile", "tarfile",
	"tempfile", "shutil", "glob", "fnmatch", "stat", "fileinput",
	"socket", "ssl", "select", "selectors", "signal", "mmap",
	"codecs", "unicodedata", "stringprep", "locale", "gettext",
	"operator", "numbers", "decimal", "fractions", "statistics",
	"array", "weakref", "types", "pprint", "reprlib", "textwrap",
	"difflib", "uuid", "platform", "ctypes", "dis", "inspect",
	"importlib", "pkgutil", "modulefinder", "runpy", "zipimport",
	"__future__", "builtins", "gc", "atexit",
}

var nodeBuiltins = []string{
	"fs", "path", "os", "http", "https", "url", "querystring",
	"stream", "util", "events", "buffer", "crypto", "zlib",
	"child_process", "cluster", "dgram", "dns", "net", "tls",
	"readline", "repl", "vm", "assert", "console", "process",
	"timers", "string_decoder", "punycode", "domain", "constants",
	"module", "v8", "worker_threads", "perf_hooks", "async_hooks",
	"inspector", "trace_events", "wasi",
}
