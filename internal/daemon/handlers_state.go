package daemon

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spel/spel/internal/errs"
	"github.com/spel/spel/internal/sessionfs"
)

func init() {
	register("state_save", handleStateSave)
	register("state_load", handleStateLoad)
	register("state_list", handleStateList)
	register("state_show", handleStateShow)
	register("state_rename", handleStateRename)
	register("state_clear", handleStateClear)
	register("state_clean", handleStateClean)
}

func handleStateSave(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	if d.state.ctx == nil {
		return nil, &errs.NoPageError{}
	}
	name := stringFlag(params, "name")
	if name == "" {
		return nil, &paramError{"name"}
	}
	if err := os.MkdirAll(sessionfs.NamedStateDir(), 0o755); err != nil {
		return nil, &errs.FSError{Op: "mkdir", Path: sessionfs.NamedStateDir(), Cause: err}
	}
	path := sessionfs.NamedStatePath(name)
	if err := d.state.ctx.SaveStorageState(ctx, path); err != nil {
		return nil, err
	}
	return map[string]interface{}{"path": path}, nil
}

// handleStateLoad recreates the context with the named storage state,
// distinguishing a missing file (ErrNoSuchState) from one that exists but
// fails to parse (ErrCorruptState), per the decided Open Question.
func handleStateLoad(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	name := stringFlag(params, "name")
	if name == "" {
		return nil, &paramError{"name"}
	}
	path := sessionfs.NamedStatePath(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &errs.ErrNoSuchState{Name: name}
		}
		return nil, &errs.FSError{Op: "read state", Path: path, Cause: err}
	}
	var probe map[string]interface{}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, &errs.ErrCorruptState{Path: path, Cause: err}
	}

	opts := contextOptionsFromFlags(d.state.launchFlags)
	opts.StorageStatePath = path
	if err := d.state.recreateContext(ctx, opts, defaultTracePath(d.state.sessionName)); err != nil {
		return nil, err
	}
	return map[string]interface{}{"name": name}, nil
}

func handleStateList(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	entries, err := os.ReadDir(sessionfs.NamedStateDir())
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]interface{}{"states": []string{}}, nil
		}
		return nil, &errs.FSError{Op: "readdir", Path: sessionfs.NamedStateDir(), Cause: err}
	}
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".json") {
			names = append(names, strings.TrimSuffix(e.Name(), ".json"))
		}
	}
	return map[string]interface{}{"states": names}, nil
}

func handleStateShow(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	name := stringFlag(params, "name")
	if name == "" {
		return nil, &paramError{"name"}
	}
	path := sessionfs.NamedStatePath(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &errs.ErrNoSuchState{Name: name}
		}
		return nil, &errs.FSError{Op: "read state", Path: path, Cause: err}
	}
	var decoded interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, &errs.ErrCorruptState{Path: path, Cause: err}
	}
	return map[string]interface{}{"state": decoded}, nil
}

func handleStateRename(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	from := stringFlag(params, "from")
	to := stringFlag(params, "to")
	if from == "" || to == "" {
		return nil, &paramError{"from/to"}
	}
	fromPath := sessionfs.NamedStatePath(from)
	toPath := sessionfs.NamedStatePath(to)
	if _, err := os.Stat(fromPath); err != nil {
		if os.IsNotExist(err) {
			return nil, &errs.ErrNoSuchState{Name: from}
		}
		return nil, &errs.FSError{Op: "stat state", Path: fromPath, Cause: err}
	}
	if err := os.Rename(fromPath, toPath); err != nil {
		return nil, &errs.FSError{Op: "rename state", Path: fromPath, Cause: err}
	}
	return nil, nil
}

func handleStateClear(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	name := stringFlag(params, "name")
	if name == "" {
		return nil, &paramError{"name"}
	}
	path := sessionfs.NamedStatePath(name)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, &errs.FSError{Op: "remove state", Path: path, Cause: err}
	}
	return nil, nil
}

// handleStateClean removes named states older than maxAgeDays (default 30).
func handleStateClean(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
	maxAge := time.Duration(intFlag(params, "maxAgeDays", 30)) * 24 * time.Hour
	dir := sessionfs.NamedStateDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]interface{}{"removed": 0}, nil
		}
		return nil, &errs.FSError{Op: "readdir", Path: dir, Cause: err}
	}
	removed := 0
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			continue
		}
		if time.Since(info.ModTime()) > maxAge {
			if os.Remove(filepath.Join(dir, e.Name())) == nil {
				removed++
			}
		}
	}
	return map[string]interface{}{"removed": removed}, nil
}
