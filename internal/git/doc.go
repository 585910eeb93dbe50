// Package git provides the Git operations tiller needs to publish a note.
//
// Commands run through a process.Runner rooted at the notes repository, so
// every call uses the repository path as its working directory regardless
// of where tiller was started:
//
//	client := git.New(cfg.RepoPath, process.Exec{}, logger)
//	if err := client.Add(ctx, notePath); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Failures are returned as *output.ExitError with ExitSystemError (2):
//   - "git not found" when the git executable cannot be started
//   - "git <subcommand> failed: <stderr>" when git exits non-zero
//
// The underlying *process.ExitStatusError stays reachable with errors.As,
// so callers can inspect the exit code and stderr.
package git
