// Package ipc implements the property-file codec used to exchange key/value
// property sets between the pipeline engine and a short-lived extension
// process.
//
// Wire format "escape/1":
//   - UTF-8 text, one property per line, "\n" terminated ("\r\n" accepted on read)
//   - optional leading "# IpcMap" header; every line starting with "#" is a comment
//   - "name=value", split on the first "="; the name is trimmed, the value is
//     escaped so that "\", CR and LF survive a single line
//
// The Base64 encodings used by older engine releases are a different wire
// format and are not understood here.
//
// Decoding is strict by default: a line without "=" aborts the read with a
// MalformedLineError. Permissive decoding skips such lines instead.
//
// Writes flush every line before producing the next and remove the target
// file on any failure, so a consumer never sees a torn line or a partial
// artifact from a failed write.
package ipc
