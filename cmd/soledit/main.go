// If you are AI: This is the main entrypoint for the soledit command.
// It parses arguments, loads configuration and the logger, and dispatches subcommands.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"

	"soledit/internal/config"
	"soledit/internal/locator"
	"soledit/internal/logging"
	"soledit/internal/store"
)

// args is the command line. Exactly one subcommand is required.
type args struct {
	Config string `arg:"-c,--config" help:"path to config file (default: XDG config dir)"`
	File   string `arg:"-f,--file" help:"save file path or name, overrides save.file"`

	Get       *getCmd       `arg:"subcommand:get" help:"print the value at a dotted path"`
	Set       *setCmd       `arg:"subcommand:set" help:"store a value at a dotted path"`
	Unset     *unsetCmd     `arg:"subcommand:unset" help:"delete the value at a dotted path"`
	Dump      *dumpCmd      `arg:"subcommand:dump" help:"list top-level keys and values"`
	Export    *exportCmd    `arg:"subcommand:export" help:"convert the save to another format"`
	Backup    *backupCmd    `arg:"subcommand:backup" help:"copy the save next to itself"`
	Restore   *restoreCmd   `arg:"subcommand:restore" help:"put the backup back in place"`
	Skills    *skillsCmd    `arg:"subcommand:skills" help:"list learned skills"`
	MaxSkills *maxSkillsCmd `arg:"subcommand:maxskills" help:"raise every learned skill to full experience"`
	Meridians *meridiansCmd `arg:"subcommand:meridians" help:"open every meridian"`
	Faction   *factionCmd   `arg:"subcommand:faction" help:"join another sect"`
	Items     *itemsCmd     `arg:"subcommand:items" help:"list the inventory"`
	AddItem   *addItemCmd   `arg:"subcommand:additem" help:"add items to the inventory"`
	Attrs     *attrsCmd     `arg:"subcommand:attrs" help:"list character attributes"`
	Find      *findCmd      `arg:"subcommand:find" help:"search for save files"`
	Watch     *watchCmd     `arg:"subcommand:watch" help:"print changes to the save as they happen"`
	Serve     *serveCmd     `arg:"subcommand:serve" help:"serve the save over HTTP and WebSocket"`
}

func (args) Description() string {
	return "soledit reads and edits Flash SOL save files.\n"
}

type getCmd struct {
	Path string `arg:"positional,required" help:"dotted key path, e.g. v.14"`
}

type setCmd struct {
	Path  string `arg:"positional,required" help:"dotted key path"`
	Value string `arg:"positional,required" help:"new value"`
	Type  string `arg:"-t,--type" default:"auto" help:"auto|number|string|bool|null|undefined"`
}

type unsetCmd struct {
	Path string `arg:"positional,required" help:"dotted key path"`
}

type dumpCmd struct{}

type exportCmd struct {
	Format string `arg:"-F,--format" default:"json" help:"json|yaml|msgpack|cbor"`
	Out    string `arg:"-o,--out" help:"output file (default: stdout)"`
}

type backupCmd struct{}

type restoreCmd struct{}

type skillsCmd struct{}

type maxSkillsCmd struct {
	Limit int `arg:"--limit" default:"999" help:"experience to set"`
}

type meridiansCmd struct{}

type factionCmd struct {
	ID int `arg:"positional,required" help:"1 武当, 2 华山, 3 全真, 4 少林"`
}

type itemsCmd struct{}

type addItemCmd struct {
	ID    int64 `arg:"positional,required" help:"item id"`
	Count int64 `arg:"positional,required" help:"how many to add"`
}

type attrsCmd struct{}

type findCmd struct {
	Name string `arg:"positional" help:"save name, default every save"`
}

type watchCmd struct{}

type serveCmd struct{}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses argv and executes the chosen subcommand. It returns the exit code.
func run(argv []string, stdout, stderr io.Writer) int {
	var a args
	p, err := arg.NewParser(arg.Config{Program: "soledit"}, &a)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	switch err := p.Parse(argv); {
	case errors.Is(err, arg.ErrHelp):
		p.WriteHelp(stdout)
		return 0
	case err != nil:
		p.WriteUsage(stderr)
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	if p.Subcommand() == nil {
		p.WriteUsage(stderr)
		fmt.Fprintln(stderr, "error: a subcommand is required")
		return 2
	}

	cfg, err := config.Load(a.Config)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if a.File != "" {
		cfg.Save.File = a.File
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid config: %v\n", err)
		return 1
	}

	log, sync, err := logging.New(logging.Options{
		Backend: cfg.Log.Backend,
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Output:  stderr,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer sync()

	app := newApp(cfg, log, stdout)
	if err := app.execute(p.Subcommand()); err != nil {
		log.Error("command failed", logging.Fields{"err": err})
		return 1
	}
	return 0
}

// newApp wires the store and locator from cfg.
func newApp(cfg *config.Config, log logging.Logger, out io.Writer) *app {
	return &app{
		cfg: cfg,
		log: log,
		out: out,
		store: store.New(store.Options{
			BackupSuffix: cfg.Save.BackupSuffix,
			KeepBackup:   cfg.Save.Backups(),
			Logger:       log,
		}),
		loc: locator.New(locator.Options{Dir: cfg.Save.Dir, Logger: log}),
	}
}
