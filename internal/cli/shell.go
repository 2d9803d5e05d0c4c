package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/bio-browser/internal/browser"
	"github.com/rcliao/bio-browser/internal/model"
)

const shellHelp = `commands:
  search <text>            set the text query (empty text clears it)
  exp <n>                  set the minimum experience level
  toggle <dim> <value>     select or deselect a facet value (dim: domain, confidence, bioLength)
  rm <dim> <value>         remove one active chip
  clear search|exp         remove the search or experience chip
  reset                    clear every filter
  page <n>                 go to page n
  next | prev              move one page
  open <id>                show one record
  view                     print the current page
  quit                     leave the shell`

func init() {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Browse records interactively",
		Long:  "Start a line-oriented session. Each filter change re-runs the filter and returns to page 1.\n\n" + shellHelp,
		Run:   runShell,
	}

	cmd.Flags().Int("page-size", 0, "Records per page (default: $BIO_BROWSER_PAGE_SIZE or 10)")

	RootCmd.AddCommand(cmd)
}

func runShell(cmd *cobra.Command, args []string) {
	pageSize, _ := cmd.Flags().GetInt("page-size")
	if pageSize <= 0 {
		pageSize = cfg.PageSize
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Loading profiles...")
	sess, err := loadSession(cmd.Context(), pageSize)
	if err != nil {
		exitErr("load", err)
	}

	if err := shellLoop(sess, cmd.InOrStdin(), out, cmd.ErrOrStderr()); err != nil {
		exitErr("read input", err)
	}
}

// shellLoop renders the session as text, then runs commands read from in
// until quit or end of input.
func shellLoop(sess *browser.Session, in io.Reader, out, errOut io.Writer) error {
	writeViewText(out, sess.View())
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		quit, err := execLine(sess, scanner.Text(), out)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			continue
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// execLine runs one shell command against the session and renders the
// result to w. It reports whether the shell should exit.
func execLine(sess *browser.Session, line string, w io.Writer) (bool, error) {
	verb, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	switch verb {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(w, shellHelp)
		return false, nil
	case "search":
		sess.SetQuery(rest)
	case "exp":
		n, err := strconv.Atoi(rest)
		if err != nil {
			return false, fmt.Errorf("exp: invalid number %q", rest)
		}
		sess.SetMinExperience(n)
	case "toggle", "rm":
		d, value, err := parseFacetArgs(rest)
		if err != nil {
			return false, fmt.Errorf("%s: %w", verb, err)
		}
		if verb == "toggle" {
			sess.ToggleFacet(d, value)
		} else {
			sess.RemoveChip(model.Chip{Dimension: d, Value: value})
		}
	case "clear":
		switch rest {
		case "search":
			sess.ClearQuery()
		case "exp":
			sess.ClearMinExperience()
		default:
			return false, fmt.Errorf("clear: expected search or exp, got %q", rest)
		}
	case "reset":
		sess.ResetAll()
	case "page":
		n, err := strconv.Atoi(rest)
		if err != nil {
			return false, fmt.Errorf("page: invalid number %q", rest)
		}
		sess.SetPage(n)
	case "next", "prev":
		page := sess.View().Page
		if page == nil {
			return false, fmt.Errorf("%s: no records loaded", verb)
		}
		if verb == "next" {
			if !page.HasNext() {
				return false, fmt.Errorf("next: already on the last page")
			}
			sess.SetPage(page.Index + 1)
		} else {
			if !page.HasPrev() {
				return false, fmt.Errorf("prev: already on the first page")
			}
			sess.SetPage(page.Index - 1)
		}
	case "open":
		id, err := strconv.Atoi(rest)
		if err != nil {
			return false, fmt.Errorf("open: invalid id %q", rest)
		}
		r, ok := sess.Record(id)
		if !ok {
			return false, fmt.Errorf("open: record not found: %d", id)
		}
		writeDetailText(w, detail{Record: r, Name: r.DisplayName(), Similar: sess.Similar(id, 3)})
		return false, nil
	case "view":
	default:
		return false, fmt.Errorf("unknown command %q (try help)", verb)
	}

	writeViewText(w, sess.View())
	return false, nil
}

// parseFacetArgs splits "<dim> <value>" where value may contain spaces.
func parseFacetArgs(s string) (model.Dimension, string, error) {
	name, value, ok := strings.Cut(s, " ")
	value = strings.TrimSpace(value)
	if !ok || value == "" {
		return 0, "", fmt.Errorf("expected <dimension> <value>")
	}
	d, err := model.ParseDimension(name)
	if err != nil {
		return 0, "", err
	}
	if !d.Allows(value) {
		return 0, "", fmt.Errorf("invalid %s %q (valid: %v)", d, value, d.Values())
	}
	return d, value, nil
}
