// This file is part of Shortcuts.
//
// Shortcuts is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Shortcuts is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Shortcuts.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/shortcuts/bindfile"
	"github.com/jetsetilly/shortcuts/gui"
	"github.com/jetsetilly/shortcuts/gui/sdlinput"
	"github.com/jetsetilly/shortcuts/gui/termui"
	"github.com/jetsetilly/shortcuts/logger"
	"github.com/jetsetilly/shortcuts/notifications"
	"github.com/jetsetilly/shortcuts/prefs"
	"github.com/jetsetilly/shortcuts/resources"
	"github.com/jetsetilly/shortcuts/session"
	"github.com/jetsetilly/shortcuts/statsview"
	"github.com/jetsetilly/shortcuts/version"
	"github.com/spf13/cobra"
)

const appTitle = version.ApplicationName

// game opened by the open command if none is given on the command line
const defaultGame = "demo"

// SDL requires that events are handled on the thread that initialised it.
// cobra runs commands in the main goroutine so locking the main goroutine to
// the main thread is sufficient.
func init() {
	runtime.LockOSThread()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		os.Exit(10)
	}
}

var (
	flagLog       bool
	flagPrefs     string
	flagStatsview bool
	flagStates    string
	flagGraph     bool
)

var rootCmd = &cobra.Command{
	Use:   "shortcuts",
	Short: "Keyboard and joystick shortcuts for an emulator front end",
	Long: `Shortcuts demonstrates the dispatch of keyboard and joystick shortcuts to
the commands of an emulator front end, and the synchronisation of menu labels
with the current bindings and save-state slots.

The demonstration emulator does nothing but write and read save-state files.

Preferences for a single session can be given with --prefs. For example:

  shortcuts run --prefs "shortcuts.slots.humanize :: true; shortcuts.slots.count :: 4"`,
	Version:      version.String(),
	SilenceUsage: true,
}

var runCmd = &cobra.Command{
	Use:   "run [game]",
	Short: "Run the terminal front end",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args, false, func() (gui.Host, error) {
			return termui.NewHost(appTitle)
		})
	},
}

var sdlCmd = &cobra.Command{
	Use:   "sdl [game]",
	Short: "Run the SDL front end",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args, true, func() (gui.Host, error) {
			return sdlinput.NewHost(appTitle)
		})
	},
}

var bindingsCmd = &cobra.Command{
	Use:   "bindings",
	Short: "List the current bindings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listBindings(flagGraph)
	},
}

var bindingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the bindings file with the default bindings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return resetBindings()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagLog, "log", false, "echo debugging log to stderr")
	rootCmd.PersistentFlags().StringVar(&flagPrefs, "prefs", "", "preferences for this session only")

	for _, c := range []*cobra.Command{runCmd, sdlCmd} {
		c.Flags().StringVar(&flagStates, "states", "", "directory for save-state files")
		if statsview.Available() {
			c.Flags().BoolVar(&flagStatsview, "statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
		}
	}

	bindingsCmd.Flags().BoolVar(&flagGraph, "graph", false, "write the bindings as a graphviz diagram")
	bindingsCmd.AddCommand(bindingsResetCmd)

	rootCmd.AddCommand(runCmd, sdlCmd, bindingsCmd)
}

// the command line preferences are pushed for the duration of the command.
// preferences that were never used are probably spelling mistakes
func pushPrefs() func() {
	prefs.PushCommandLineStack(flagPrefs)
	return func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
		}
	}
}

// loadSession prepares preferences and the bindings file and creates a new
// session with the host collaborators.
func loadSession(host session.Host) (*session.Session, *session.Preferences, *bindfile.File, error) {
	p, err := session.NewPreferences("")
	if err != nil {
		return nil, nil, nil, err
	}

	pth, err := resources.JoinPath(p.BindingsFile.Value())
	if err != nil {
		return nil, nil, nil, err
	}
	store := bindfile.NewFile(pth)
	host.Store = store

	sess, err := session.NewSession(host, p)
	if err != nil {
		return nil, nil, nil, err
	}

	return sess, p, store, nil
}

// run a front end. the create function is called after everything that can
// fail without a front end has been prepared.
func run(args []string, echo bool, create func() (gui.Host, error)) error {
	defer pushPrefs()()

	// the terminal front end takes over the terminal so the log is written
	// when the front end has finished
	if flagLog {
		if echo {
			logger.SetEcho(os.Stderr)
		} else {
			defer logger.Write(os.Stderr)
		}
	}

	if flagStatsview {
		statsview.Launch()
	}

	game := defaultGame
	if len(args) > 0 {
		game = args[0]
	}

	states := flagStates
	if states == "" {
		var err error
		states, err = resources.JoinPath("states")
		if err != nil {
			return err
		}
	}
	if err := os.MkdirAll(states, 0o700); err != nil {
		return err
	}

	host, err := create()
	if err != nil {
		return err
	}
	defer func() {
		if err := host.Destroy(); err != nil {
			logger.Log(logger.Allow, "shortcuts", err.Error())
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	em := newEmulator(host, states, game, cancel)

	sess, p, store, err := loadSession(session.Host{
		UI:     host,
		Sink:   em,
		Poller: host,
	})
	if err != nil {
		return err
	}
	em.attach(sess)

	sess.OnSuppress(func(suppressed bool) {
		if suppressed {
			host.SetStatus("shortcuts suppressed")
		} else {
			host.SetStatus("")
		}
	})

	// changes to the bindings file by another program are picked up while
	// the front end is running
	w, err := bindfile.NewWatcher(store.Path())
	if err != nil {
		logger.Log(logger.Allow, "shortcuts", err.Error())
	} else {
		defer w.Close()
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case <-w.Changed():
					host.Service(func() {
						if err := sess.Notify(notifications.NotifyBindingsChanged); err != nil {
							logger.Log(logger.Allow, "shortcuts", err.Error())
						}
					})
				}
			}
		}()
	}

	if err := host.Run(ctx, sess); err != nil {
		return err
	}

	return p.Save()
}

func listBindings(graph bool) error {
	defer pushPrefs()()

	sess, _, store, err := loadSession(headlessHost())
	if err != nil {
		return err
	}

	ents := sess.Entries()

	if graph {
		memviz.Map(os.Stdout, &ents)
		return nil
	}

	fmt.Printf("bindings from %s\n\n", filepath.Base(store.Path()))
	reg := sess.Registry()
	for _, e := range ents {
		name := e.Command
		if id, ok := reg.ByKey(e.Command); ok {
			name = reg.Get(id).Name
		}
		fmt.Printf("%-24s %s\n", name, e.Input)
	}

	return nil
}

func resetBindings() error {
	defer pushPrefs()()

	sess, _, store, err := loadSession(headlessHost())
	if err != nil {
		return err
	}

	sess.ResetBindings()
	if err := sess.SaveBindings(); err != nil {
		return err
	}

	fmt.Printf("default bindings written to %s\n", store.Path())
	return nil
}
