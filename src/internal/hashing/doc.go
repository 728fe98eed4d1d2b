// Package hashing provides MD5 checksum helpers used to detect changes of
// app configuration text.
//
// # Components
//
//   - ChecksumReaderProxy: Calculates MD5 while reading from an io.Reader
//   - TextChecksum: MD5 of a configuration text
//
// # Example Usage
//
//	f, _ := os.Open(path)
//	proxy := hashing.NewMD5ReaderProxy(f)
//	content, _ := io.ReadAll(proxy)
//	before, _ := proxy.GetChecksum()
//	if before == hashing.TextChecksum(formatted) {
//	    // already formatted
//	}
package hashing
