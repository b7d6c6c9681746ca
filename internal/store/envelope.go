// Package store persists league state to JSON envelope files on disk:
// league_state.json, season_history.json, career_history.json, and
// hall_of_fame.json. Every file shares one write/load protocol so the
// version check and repair pass only need to be written once.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"foundersleague.dev/sim/internal/core"
)

// SaveVersion is the current on-disk envelope version. Loading a file
// with a higher version refuses outright rather than guess at an
// unknown shape.
const SaveVersion = 2

// writeEnvelope serializes payload under key, optionally backing up
// the existing file first, then writes atomically via a temp file and
// rename so a crash mid-write never leaves a half-written file on
// disk in place of a good one.
func writeEnvelope(path, key string, payload any, withBackup bool) error {
	full := map[string]any{
		"save_version": SaveVersion,
		key:            payload,
	}

	out, err := json.MarshalIndent(full, "", "  ")
	if err != nil {
		return core.Persistence(reasonMarshal, err)
	}

	if withBackup {
		if _, err := os.Stat(path); err == nil {
			if err := copyFile(path, path+".bak"); err != nil {
				return core.Persistence(reasonBackup, err)
			}
		}
	}

	return atomicWrite(path, out)
}

func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return core.Persistence(reasonWrite, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return core.Persistence(reasonWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return core.Persistence(reasonWrite, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return core.Persistence(reasonWrite, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}

// readEnvelope loads path and unmarshals its payload key into out.
// Missing files are not an error: the caller gets a zero-value result
// and loadErr == nil, matching the "if missing, return defaults" load
// protocol. A parse failure or version mismatch is reported through
// loadErr but never returned as a fatal error — callers record it and
// fall back to defaults, exactly like a malformed legacy save.
func readEnvelope(path, key string, out any) (loadErr error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return core.Persistence(reasonRead, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// Legacy raw shape: a bare list (e.g. an old season_history.json
		// that was just an array of entries), no envelope at all.
		if err := json.Unmarshal(data, out); err != nil {
			return core.Persistence(reasonParse, err)
		}
		return nil
	}

	var version int
	if v, ok := raw["save_version"]; ok {
		if err := json.Unmarshal(v, &version); err != nil {
			return core.Persistence(reasonParse, err)
		}
	}
	if version > SaveVersion {
		return core.Rejection(core.ReasonVersionMismatch, "save_version %d is newer than supported version %d", version, SaveVersion)
	}

	payload, ok := raw[key]
	if !ok {
		// Legacy raw shape: a dict without the envelope wrapper.
		payload = data
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return core.Persistence(reasonParse, err)
	}
	return nil
}

const (
	reasonMarshal = "envelope_marshal_failed"
	reasonWrite   = "envelope_write_failed"
	reasonRead    = "envelope_read_failed"
	reasonParse   = "envelope_parse_failed"
	reasonBackup  = "envelope_backup_failed"
)
