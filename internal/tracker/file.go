package tracker

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// AddFile reads a file, sniffs its byte-order mark to detect UTF-8,
// UTF-16LE, or UTF-16BE, transcodes it to UTF-8, appends it to the pool, and
// returns a span over the decoded text.
func (t *Tracker) AddFile(path string) (Span, error) {
	content, err := decodeFile(path)
	if err != nil {
		return Span{}, err
	}
	return t.addRegion(path, content, nil), nil
}

// decodeFile reads path and returns its contents as UTF-8, detecting a BOM
// the way configuration files in the wild are commonly saved by editors.
func decodeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		// UTF-8 BOM.
		return string(data[3:]), nil
	}

	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE {
		return decodeUTF16(data, unicode.LittleEndian)
	}

	if len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF {
		return decodeUTF16(data, unicode.BigEndian)
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	// Fallback: treat as Latin-1 and promote byte-for-byte to runes.
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes), nil
}

func decodeUTF16(data []byte, endianness unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endianness, unicode.UseBOM).NewDecoder()

	utf8Data, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("failed to decode UTF-16: %w", err)
	}

	if len(utf8Data) >= 3 && utf8Data[0] == 0xEF && utf8Data[1] == 0xBB && utf8Data[2] == 0xBF {
		utf8Data = utf8Data[3:]
	}

	result := string(utf8Data)
	result = string(bytes.TrimPrefix([]byte(result), []byte("﻿")))
	return result, nil
}
