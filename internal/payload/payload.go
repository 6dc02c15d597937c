// Package payload provides ordered best-effort field resolution over the
// loosely-structured JSON objects the call platform sends. The webhook
// normalizer and the recording-URL reconciler both resolve candidate paths
// through this package so their priority orders cannot drift apart.
package payload

import "strings"

// Get returns the value at a dotted path inside nested maps, or nil when
// any segment is missing or not an object.
func Get(m map[string]any, path string) any {
	cur := any(m)
	for _, seg := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur, ok = obj[seg]
		if !ok {
			return nil
		}
	}
	return cur
}

// String returns the string at path, or "" when the value is absent or
// not a string.
func String(m map[string]any, path string) string {
	s, _ := Get(m, path).(string)
	return s
}

// Map returns the object at path, or nil when absent or not an object.
func Map(m map[string]any, path string) map[string]any {
	obj, _ := Get(m, path).(map[string]any)
	return obj
}

// FirstString returns the first non-empty string among the candidate
// paths, checked in order.
func FirstString(m map[string]any, paths ...string) string {
	for _, p := range paths {
		if s := String(m, p); s != "" {
			return s
		}
	}
	return ""
}

// StringPtr returns the first non-empty string among paths as a pointer,
// or nil when every candidate is empty. Used for fields that must
// round-trip as null rather than "".
func StringPtr(m map[string]any, paths ...string) *string {
	if s := FirstString(m, paths...); s != "" {
		return &s
	}
	return nil
}

// RecordingURLPaths returns the ordered candidate paths for a call's
// recording URL, relative to an object holding the call-level fields
// under callPrefix and the artifact object under artifactPrefix (either
// may be "" when the fields sit at the top level). Priority: call-level
// camelCase, call-level snake_case, artifact-level camelCase,
// artifact-level snake_case, nested recording object's url, then a
// recording field that is itself a plain string.
func RecordingURLPaths(callPrefix, artifactPrefix string) []string {
	join := func(prefix, field string) string {
		if prefix == "" {
			return field
		}
		return prefix + "." + field
	}
	return []string{
		join(callPrefix, "recordingUrl"),
		join(callPrefix, "recording_url"),
		join(artifactPrefix, "recordingUrl"),
		join(artifactPrefix, "recording_url"),
		join(artifactPrefix, "recording.url"),
		join(artifactPrefix, "recording"),
	}
}
