// aliaslint validates the configured PCI passthrough aliases offline and
// prints the resulting table, so operators can catch configuration errors
// before the scheduler does.
package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/virt-d/passthrough-alias-resolver/internal/config"
	"github.com/virt-d/passthrough-alias-resolver/internal/logging"
	"github.com/virt-d/passthrough-alias-resolver/pkg/alias"
)

func main() {
	configPath := flag.String("config", "", "path to the resolver configuration file")
	flag.Parse()
	os.Exit(run(*configPath, os.Stdout, os.Stderr))
}

func run(configPath string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger := logging.NewLogger(cfg.LogLevel)

	table, err := alias.NewLoader(cfg).Load()
	if err != nil {
		logger.Error(err, "alias configuration is invalid")
		fmt.Fprintln(stderr, err)
		return 1
	}

	logger.V(logging.DEBUG).Info("alias configuration is valid", "aliases", table.Len())
	for _, name := range table.Names() {
		a, _ := table.Get(name)
		fmt.Fprintf(stdout, "%s\tpolicy=%s\tspecs=%d\n", a.Name, a.Policy, len(a.Specs))
	}
	return 0
}
