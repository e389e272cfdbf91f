package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"evilboard/src/base"
	"evilboard/src/game"
	"evilboard/src/logx"
	"evilboard/src/rules"
	"evilboard/ui/board"
	clic "evilboard/ui/cli"
	"evilboard/ui/gui"
	"evilboard/ui/gui/gbase/gconf"
	"evilboard/ui/gui/ghelper/gdialog"
	"evilboard/ui/snapshot"
)

const logfile string = "evilboard.log"

func GetLogger(w io.Writer, c *cli.Command, conf *gconf.Config) *logx.Logx {
	level := conf.LogLevel
	if c.IsSet("level") {
		level = c.String("level")
	}
	return logx.NewLogx(
		logx.GetLoggerLevelByString(level),
		c.Bool("debug"),
		c.Bool("console"),
		w,
	)
}

// session is what every command starts from: the merged config, a logger
// and the history with the requested moves applied.
type session struct {
	conf    *gconf.Config
	log     *logx.Logx
	history *game.History
}

// loadConfig reads the config file and lets command-line flags override it.
func loadConfig(c *cli.Command) (*gconf.Config, error) {
	conf, err := gconf.NewGUIConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("fen") {
		conf.FEN = c.String("fen")
	}
	if c.IsSet("flip") {
		conf.Flipped = c.Bool("flip")
	}
	if c.IsSet("role") {
		if _, err := game.ParseRole(c.String("role")); err != nil {
			return nil, err
		}
		conf.Role = c.String("role")
	}
	if c.IsSet("style") {
		if _, ok := board.StyleFromString(c.String("style")); !ok {
			return nil, fmt.Errorf("unknown style %q", c.String("style"))
		}
		conf.Board = c.String("style")
	}
	if c.IsSet("debug") {
		conf.Debug = c.Bool("debug")
	}
	return conf, nil
}

func newHistory(fen string, moves []string) (*game.History, error) {
	pos, err := rules.FromFEN(fen)
	if err != nil {
		return nil, err
	}
	h := game.NewHistory(game.New(pos))
	for _, s := range moves {
		mv, err := base.MoveFromUCI(s)
		if err != nil {
			return nil, err
		}
		if pos, err = pos.Play(mv); err != nil {
			return nil, err
		}
		h.Push(mv)
	}
	return h, nil
}

func withSession(c *cli.Command, fn func(s *session) error) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error open logfile: %w", err)
	}
	defer file.Close()

	conf, err := loadConfig(c)
	if err != nil {
		return fmt.Errorf("error load config: %w", err)
	}
	l := GetLogger(file, c, conf)
	defer l.Sync() //nolint:errcheck

	h, err := newHistory(conf.FEN, c.StringSlice("moves"))
	if err != nil {
		l.Errorf("error build position: %v", err)
		return fmt.Errorf("error build position: %w", err)
	}
	return fn(&session{conf: conf, log: l, history: h})
}

func RunGUI(s *session) error {
	g, err := gui.NewGUI(s.conf, s.history, s.log)
	if err != nil {
		s.log.Errorf("error init GUI: %v", err)
		gdialog.ShowError("EvilBoard", err.Error())
		return fmt.Errorf("error init GUI: %w", err)
	}
	return g.Run()
}

func RunRender(s *session, c *cli.Command) error {
	sel := base.NoSquare
	if c.IsSet("select") {
		sqs, err := snapshot.ParseSquares([]string{c.String("select")})
		if err != nil {
			return err
		}
		sel = sqs[0]
	}
	highlights, err := snapshot.ParseSquares(c.StringSlice("highlight"))
	if err != nil {
		return err
	}
	arrows, err := snapshot.ParseArrows(c.StringSlice("arrow"))
	if err != nil {
		return err
	}

	st := board.BState{Game: s.history.Current(), Role: s.conf.BoardRole(), Flipped: s.conf.Flipped}
	img, err := snapshot.Render(st, snapshot.Options{
		Size:       c.Int("size"),
		Style:      s.conf.BoardStyle(),
		Select:     sel,
		Highlights: highlights,
		Arrows:     arrows,
	}, s.log.Named("snapshot"))
	if err != nil {
		return err
	}
	out := c.String("out")
	if err := snapshot.SavePNG(out, img); err != nil {
		return err
	}
	s.log.Infof("rendered %s", out)
	fmt.Println(out)
	return nil
}

func RunPrint(s *session, c *cli.Command) error {
	highlights, err := snapshot.ParseSquares(c.StringSlice("highlight"))
	if err != nil {
		return err
	}
	color := clic.IsColorTerminal(os.Stdout)
	if c.IsSet("color") {
		color = c.Bool("color")
	}
	if color {
		clic.EnableANSI()
	}
	cur := s.history.Current()
	opts := clic.DrawOptions{
		Color:      color,
		Flipped:    s.conf.Flipped,
		Selected:   base.NoSquare,
		Highlights: highlights,
	}
	if cur.Annotation != nil {
		mv := cur.Annotation.Move
		opts.LastMove = &mv
	}
	clic.PrintPosition(os.Stdout, cur.Board, opts)
	fmt.Printf("Status: %s, %s to move\n", cur.Board.Status(), cur.Board.Turn())
	return nil
}

func RunPlay(s *session, c *cli.Command) error {
	color := clic.IsColorTerminal(os.Stdout)
	if color {
		clic.EnableANSI()
	}
	cl := clic.NewCLI(s.history, clic.Options{
		Role:    s.conf.BoardRole(),
		Flipped: s.conf.Flipped,
		Color:   color,
	}, s.log, os.Stdin, os.Stdout)
	return cl.Run()
}

func RunEvilBoard() error {
	df := &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "enable debug mode",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Usage:   "logger level (debug, info, warn, error)",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console logger encoding",
	}
	conff := &cli.StringFlag{
		Name:    "config",
		Usage:   "path to a .json or .yaml config",
		Value:   gconf.DefaultFile,
		Sources: cli.EnvVars("EVILBOARD_CONFIG"),
	}
	ff := &cli.StringFlag{
		Name:  "fen",
		Usage: "start position in FEN",
	}
	mf := &cli.StringSliceFlag{
		Name:  "moves",
		Usage: "UCI moves played from the start position",
	}
	flf := &cli.BoolFlag{
		Name:  "flip",
		Usage: "show the board from black's side",
	}
	rf := &cli.StringFlag{
		Name:  "role",
		Usage: "who may move: white, black, analyst or spectator",
	}
	sf := &cli.StringFlag{
		Name:  "style",
		Usage: "board colours: green, brown or blue",
	}
	hf := &cli.StringSliceFlag{
		Name:  "highlight",
		Usage: "squares to highlight, e.g. e4",
	}
	common := []cli.Flag{df, lf, cf, conff, ff, mf, flf, rf, sf}

	return (&cli.Command{
		Name:           "evilboard",
		Usage:          "interactive chessboard",
		DefaultCommand: "gui",
		Commands: []*cli.Command{
			{
				Name:  "gui",
				Usage: "open the board in a window",
				Flags: common,
				Action: func(ctx context.Context, c *cli.Command) error {
					return withSession(c, RunGUI)
				},
			},
			{
				Name:  "render",
				Usage: "draw the board into a PNG file",
				Flags: append(append([]cli.Flag{}, common...),
					hf,
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "board.png", Usage: "output file"},
					&cli.IntFlag{Name: "size", Value: 640, Usage: "side of the image in pixels"},
					&cli.StringFlag{Name: "select", Usage: "square to click, showing its moves"},
					&cli.StringSliceFlag{Name: "arrow", Usage: "arrows as from-to pairs, e.g. g1f3"},
				),
				Action: func(ctx context.Context, c *cli.Command) error {
					return withSession(c, func(s *session) error { return RunRender(s, c) })
				},
			},
			{
				Name:  "print",
				Usage: "print the board to the terminal",
				Flags: append(append([]cli.Flag{}, common...),
					hf,
					&cli.BoolFlag{Name: "color", Usage: "force ANSI colours on or off"},
				),
				Action: func(ctx context.Context, c *cli.Command) error {
					return withSession(c, func(s *session) error { return RunPrint(s, c) })
				},
			},
			{
				Name:  "play",
				Usage: "interactive board in the terminal",
				Flags: common,
				Action: func(ctx context.Context, c *cli.Command) error {
					return withSession(c, func(s *session) error { return RunPlay(s, c) })
				},
			},
		},
	}).Run(context.Background(), os.Args)
}
