package hashing

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"testing"
)

type errorReader struct {
	err error
}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, e.err
}

func TestChecksumReaderProxy_Read(t *testing.T) {
	testData := `{"enable": true}`
	proxy := NewMD5ReaderProxy(strings.NewReader(testData))

	content, err := io.ReadAll(proxy)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(content) != testData {
		t.Errorf("Expected %q, got %q", testData, content)
	}

	checksum, err := proxy.GetChecksum()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := md5.Sum([]byte(testData))
	if checksum != hex.EncodeToString(expected[:]) {
		t.Errorf("Expected checksum %x, got %s", expected, checksum)
	}
	if checksum != TextChecksum(testData) {
		t.Errorf("Expected proxy checksum to match TextChecksum")
	}
}

func TestChecksumReaderProxy_ReadError(t *testing.T) {
	readErr := errors.New("read failed")
	proxy := NewMD5ReaderProxy(&errorReader{err: readErr})

	_, err := proxy.Read(make([]byte, 10))
	if !errors.Is(err, readErr) {
		t.Errorf("Expected read error to be returned, got %v", err)
	}
}

func TestTextChecksum(t *testing.T) {
	if TextChecksum("a") == TextChecksum("b") {
		t.Error("Expected different texts to have different checksums")
	}
	if TextChecksum("") != "d41d8cd98f00b204e9800998ecf8427e" {
		t.Errorf("Unexpected checksum of empty text: %s", TextChecksum(""))
	}
}
