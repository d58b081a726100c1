package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mips32emu/mips32emu/config"
	"github.com/mips32emu/mips32emu/debugger"
	"github.com/mips32emu/mips32emu/loader"
	"github.com/mips32emu/mips32emu/vm"
)

// Version is set at build time with -ldflags "-X main.Version=v1.2.3".
var Version = "dev"

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "mips32",
		Short:         "A user-mode simulator for little-endian 32-bit MIPS-I ELF executables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.toml (default: per-OS config dir)")

	// "mips32 <elf>" is shorthand for "mips32 run <elf>".
	runCmd := newRunCmd(&configPath)
	rootCmd.Args = cobra.ExactArgs(1)
	rootCmd.RunE = runCmd.RunE

	rootCmd.AddCommand(runCmd, newDebugCmd(&configPath), newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mips32: %v\n", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("mips32 %s\n", Version)
			return nil
		},
	}
}

func newRunCmd(configPath *string) *cobra.Command {
	var maxCycles uint64
	var traceFile string

	cmd := &cobra.Command{
		Use:   "run <elf>",
		Short: "Load and execute a MIPS ELF binary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := setupVM(*configPath, maxCycles, traceFile)
			if err != nil {
				return err
			}

			loaded, err := loader.Load(args[0], m)
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}
			m.CPU.PC = loaded.EntryPoint

			if err := m.Run(); err != nil {
				return fmt.Errorf("execution fault: %w", err)
			}
			os.Exit(m.ExitCode)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&maxCycles, "max-cycles", 0, "Maximum instruction cycles before aborting (0 = use config default)")
	cmd.Flags().StringVar(&traceFile, "trace-file", "", "Write a per-instruction execution trace to this file")
	return cmd
}

func newDebugCmd(configPath *string) *cobra.Command {
	var maxCycles uint64
	var traceFile string
	var tui bool

	cmd := &cobra.Command{
		Use:   "debug <elf>",
		Short: "Load a MIPS ELF binary under the interactive debugger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := setupVM(*configPath, maxCycles, traceFile)
			if err != nil {
				return err
			}

			loaded, err := loader.Load(args[0], m)
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}
			m.CPU.PC = loaded.EntryPoint

			dbg := debugger.NewDebugger(m, loaded.Symbols)
			if tui {
				return debugger.RunTUI(dbg)
			}
			debugger.RunCLI(dbg, os.Stdin, os.Stdout)
			return dbg.LastError
		},
	}
	cmd.Flags().Uint64Var(&maxCycles, "max-cycles", 0, "Maximum instruction cycles before aborting (0 = use config default)")
	cmd.Flags().StringVar(&traceFile, "trace-file", "", "Write a per-instruction execution trace to this file")
	cmd.Flags().BoolVar(&tui, "tui", false, "Use the tview/tcell text user interface instead of the line REPL")
	return cmd
}

// setupVM loads configuration and builds a VM wired with it, ready for a
// loader to map a program into. cyclesOverride and traceFileOverride, when
// non-zero/non-empty, take precedence over the loaded config.
func setupVM(configPath string, cyclesOverride uint64, traceFileOverride string) (*config.Config, *vm.VM, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	m := vm.NewVM(os.Stdin, os.Stdout, os.Stderr)
	m.MaxCycles = cfg.Execution.MaxCycles
	if cyclesOverride != 0 {
		m.MaxCycles = cyclesOverride
	}
	m.StackSize = cfg.Execution.StackSize

	traceFile := cfg.Execution.TraceFile
	if traceFileOverride != "" {
		traceFile = traceFileOverride
	}
	if cfg.Execution.TraceEnabled || traceFile != "" {
		if traceFile == "" {
			traceFile = "trace.log"
		}
		f, err := os.Create(traceFile)
		if err != nil {
			return nil, nil, fmt.Errorf("opening trace file: %w", err)
		}
		m.Trace = f
	}

	return cfg, m, nil
}
