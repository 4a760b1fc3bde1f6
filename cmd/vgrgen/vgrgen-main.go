package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/vugu/vgnav/internal/logging"
	"github.com/vugu/vgnav/rgen"
)

func main() {

	packageName := flag.String("p", "", "The full package name to use.  If unspecified auto-detection will be attempted using go.mod")
	routerImport := flag.String("import", rgen.DefaultRouterImport, "Import path of the vgnav package used by the generated code")
	recursive := flag.Bool("r", false, "Specify to recursively process subdirectories")
	q := flag.Bool("q", false, "Only print information upon error (quiet mode)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")

	flag.Parse()

	logging.SetRawLogLevel(*logLevel)
	if *q {
		logging.SetRawLogLevel("error")
	}
	log := logging.GetLogger()

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"."} // default to current dir
	}

	if *packageName != "" && len(args) > 1 {
		log.Error("-p is only valid with a single directory, either don't use -p or only specify one dir")
		os.Exit(2)
	}

	for _, arg := range args {

		dir, err := filepath.Abs(arg)
		if err != nil {
			log.Error("converting to absolute path", "dir", arg, "error", err)
			os.Exit(1)
		}

		log.Info("processing routes", "dir", arg)

		err = rgen.New().
			SetDir(dir).
			SetPackageName(*packageName).
			SetRouterImport(*routerImport).
			SetRecursive(*recursive).
			SetLogger(log).
			Generate()
		if err != nil {
			log.Error("generating routes", "dir", arg, "error", err)
			os.Exit(1)
		}

	}

}
