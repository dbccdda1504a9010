package dataset

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var errInvalidUTF8 = errors.New("conteúdo não é UTF-8 válido")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// textEncoding é uma tentativa da cadeia de decodificação
type textEncoding struct {
	name   string
	decode func([]byte) (string, error)
}

// encodingChain é tentada em ordem até que uma decodificação produza um CSV legível
var encodingChain = []textEncoding{
	{name: "utf-8", decode: decodeUTF8},
	{name: "latin-1", decode: decodeCharmap(charmap.ISO8859_1)},
	{name: "windows-1252", decode: decodeCharmap(charmap.Windows1252)},
}

func decodeUTF8(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", errInvalidUTF8
	}
	return string(data), nil
}

func decodeCharmap(cm *charmap.Charmap) func([]byte) (string, error) {
	return func(data []byte) (string, error) {
		out, err := cm.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}
