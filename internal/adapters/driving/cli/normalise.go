package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hubfeed/internal/adapters/driven/filewatch"
	"github.com/custodia-labs/hubfeed/internal/adapters/driving/tui"
	"github.com/custodia-labs/hubfeed/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hubfeed/internal/core/domain"
)

var (
	normaliseFile  string
	normaliseWatch bool
)

var normaliseCmd = &cobra.Command{
	Use:     "normalise <kind>",
	Aliases: []string{"normalize"},
	Short:   "Render a saved API response",
	Long: `Renders a GitHub API response read from --file or stdin without any
network access. The kind names the response shape:

  repos       array of repositories
  trending    array of trending repositories
  forks       array of fork repositories (owners are listed)
  users       array of users
  stargazers  array of users
  user        a single user
  repo        a single repository
  commits     array of commits
  events      array of activity events

With --watch the file is re-rendered every time it changes.`,
	Example: `  curl -s https://api.github.com/users/octocat/events | hubfeed normalise events
  hubfeed normalise repo --file repo.json --json
  hubfeed normalise commits --file commits.json --watch`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: kindNames(),
	RunE:      runNormalise,
}

func init() {
	normaliseCmd.Flags().StringVarP(&normaliseFile, "file", "f", "", "read the response from a file instead of stdin")
	normaliseCmd.Flags().BoolVarP(&normaliseWatch, "watch", "w", false, "re-render when the file changes (requires --file)")
	rootCmd.AddCommand(normaliseCmd)
}

func kindNames() []string {
	kinds := domain.AllResourceKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

func runNormalise(cmd *cobra.Command, args []string) error {
	kind, err := domain.ParseResourceKind(args[0])
	if err != nil {
		return err
	}
	if normaliseWatch && normaliseFile == "" {
		return errors.New("--watch requires --file")
	}

	svc, err := ensureApp()
	if err != nil {
		return err
	}

	if normaliseWatch {
		return watchAndRender(cmd, svc, kind, normaliseFile)
	}

	data, uri, err := readInput(cmd.InOrStdin(), normaliseFile)
	if err != nil {
		return err
	}
	return renderRaw(newRenderer(cmd), svc, &domain.RawResource{Kind: kind, URI: uri, Content: data})
}

// readInput reads the whole of path, or of stdin when path is empty.
func readInput(stdin io.Reader, path string) (data []byte, uri string, err error) {
	if path == "" {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "stdin", nil
	}
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}
	return data, "file://" + filepath.ToSlash(path), nil
}

// renderRaw normalises raw and writes the view with r.
func renderRaw(r *renderer, svc *appServices, raw *domain.RawResource) error {
	v, err := svc.feed.Normalise(raw)
	if err != nil {
		return fmt.Errorf("normalise %s: %w", raw.Kind, err)
	}
	return r.view(v)
}

// renderFile reads and renders path into a string.
func renderFile(svc *appServices, kind domain.ResourceKind, path string, styled bool) messages.Rendered {
	msg := messages.Rendered{At: time.Now()}
	data, uri, err := readInput(nil, path)
	if err != nil {
		msg.Err = err
		return msg
	}
	var buf bytes.Buffer
	if err := renderRaw(rendererTo(&buf, styled), svc, &domain.RawResource{Kind: kind, URI: uri, Content: data}); err != nil {
		msg.Err = err
		return msg
	}
	msg.Content = buf.String()
	return msg
}

// watchAndRender renders path now and after every change until interrupted.
// A terminal gets the full-screen view, anything else a stream of renders.
func watchAndRender(cmd *cobra.Command, svc *appServices, kind domain.ResourceKind, path string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher := filewatch.New(path, filewatch.DefaultDebounce)
	defer watcher.Close()

	changes, err := watcher.Watch(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	interactive := isTerminal(out) && !jsonOutput
	updates := make(chan messages.Rendered, 1)

	go func() {
		defer close(updates)
		send := func() bool {
			select {
			case updates <- renderFile(svc, kind, path, interactive):
				return true
			case <-ctx.Done():
				return false
			}
		}
		if !send() {
			return
		}
		for range changes {
			if !send() {
				return
			}
		}
	}()

	if interactive {
		return tui.Run(ctx, fmt.Sprintf("%s · %s", kind, path), updates)
	}
	return streamRenders(ctx, out, cmd.ErrOrStderr(), updates)
}

// streamRenders prints each render, separated by blank lines. Failed
// renders are reported on errOut and watching continues.
func streamRenders(ctx context.Context, out, errOut io.Writer, updates <-chan messages.Rendered) error {
	first := true
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-updates:
			if !ok {
				return nil
			}
			if msg.Err != nil {
				fmt.Fprintf(errOut, "Error: %v\n", msg.Err)
				continue
			}
			if !first {
				fmt.Fprintln(out)
			}
			first = false
			fmt.Fprint(out, msg.Content)
		}
	}
}
