package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cleitonmarx/relaytodo/internal/client"
	"github.com/cleitonmarx/relaytodo/internal/tracing"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

const (
	defaultEndpoint = "http://localhost:8085/query"
	pageSize        = 100
)

type options struct {
	endpoint string
	output   string
	verbose  bool
	first    int
	after    string
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "relaytodoctl",
		Short:        "Manage todos through the relaytodo GraphQL API",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.endpoint, "endpoint", envOr("RELAYTODO_ENDPOINT", defaultEndpoint),
		"GraphQL endpoint (env RELAYTODO_ENDPOINT)")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "text", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log HTTP requests to stderr")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the viewer's todos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, viewerID, err := fetchPage(cmd.Context(), opts)
			if err != nil {
				return err
			}
			view, _ := store.Viewer(viewerID)
			return render(out, opts.output, view, func(w io.Writer) { printViewer(w, view) })
		},
	}
	listCmd.Flags().IntVar(&opts.first, "first", 20, "Number of todos to fetch")
	listCmd.Flags().StringVar(&opts.after, "after", "", "Cursor to start after")

	addCmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Add a todo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, viewerID, err := fetchAll(cmd.Context(), opts)
			if err != nil {
				return err
			}
			tx, err := store.Commit(cmd.Context(), client.AddTodoMutation{
				ViewerID: viewerID,
				Content:  strings.Join(args, " "),
			})
			if err != nil {
				return err
			}
			edge, _ := tx.Payload()["newTodoEdge"].(map[string]any)
			node, _ := edge["node"].(map[string]any)
			todo := client.TodoView{}
			todo.ID, _ = node["id"].(string)
			todo.Content, _ = node["content"].(string)
			todo.Cursor, _ = edge["cursor"].(string)
			return render(out, opts.output, todo, func(w io.Writer) { printTodos(w, []client.TodoView{todo}) })
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update <id> <content>",
		Short: "Replace the content of a todo",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := fetchAll(cmd.Context(), opts)
			if err != nil {
				return err
			}
			tx, err := store.Commit(cmd.Context(), client.UpdateTodoMutation{
				TodoID:  args[0],
				Content: strings.Join(args[1:], " "),
			})
			if err != nil {
				return err
			}
			node, _ := tx.Payload()["todo"].(map[string]any)
			todo := client.TodoView{}
			todo.ID, _ = node["id"].(string)
			todo.Content, _ = node["content"].(string)
			return render(out, opts.output, todo, func(w io.Writer) { printTodos(w, []client.TodoView{todo}) })
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, viewerID, err := fetchAll(cmd.Context(), opts)
			if err != nil {
				return err
			}
			tx, err := store.Commit(cmd.Context(), client.RemoveTodoMutation{ViewerID: viewerID, TodoID: args[0]})
			if err != nil {
				return err
			}
			deleted, _ := tx.Payload()["deletedTodoId"].(string)
			result := map[string]string{"deletedTodoId": deleted}
			return render(out, opts.output, result, func(w io.Writer) { fmt.Fprintf(w, "removed %s\n", deleted) })
		},
	}

	rootCmd.AddCommand(listCmd, addCmd, updateCmd, removeCmd)
	return rootCmd
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func newStore(opts *options) *client.Store {
	logger := log.New(io.Discard, "", 0)
	if opts.verbose {
		logger = log.New(os.Stderr, "relaytodoctl: ", log.LstdFlags)
	}
	transport := client.NewHTTPTransport(opts.endpoint, tracing.NewHTTPClient(logger, 3)).
		WithMutationClient(tracing.NewHTTPClient(logger, 0))
	return client.NewStore(transport, logger)
}

func fetchPage(ctx context.Context, opts *options) (*client.Store, string, error) {
	store := newStore(opts)
	viewerID, err := store.FetchViewer(ctx, opts.first, opts.after)
	if err != nil {
		return nil, "", err
	}
	return store, viewerID, nil
}

// fetchAll loads every todo so that mutations can reference any of them.
func fetchAll(ctx context.Context, opts *options) (*client.Store, string, error) {
	store := newStore(opts)
	viewerID, err := store.FetchViewer(ctx, pageSize, "")
	if err != nil {
		return nil, "", err
	}
	for {
		view, _ := store.Viewer(viewerID)
		if !view.HasNextPage {
			return store, viewerID, nil
		}
		if _, err := store.FetchViewer(ctx, pageSize, view.EndCursor); err != nil {
			return nil, "", err
		}
	}
}

func render(out io.Writer, format string, v any, text func(io.Writer)) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		text(out)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func printViewer(w io.Writer, view client.ViewerView) {
	fmt.Fprintf(w, "%s (%d todos)\n", view.Name, view.TotalCount)
	printTodos(w, view.Todos)
	if view.HasNextPage {
		fmt.Fprintf(w, "more: --after %s\n", view.EndCursor)
	}
}

func printTodos(w io.Writer, todos []client.TodoView) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, t := range todos {
		fmt.Fprintf(tw, "%s\t%s\n", t.ID, t.Content)
	}
	_ = tw.Flush()
}
