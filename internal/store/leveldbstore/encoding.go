package leveldbstore

import (
	"bytes"
	"encoding/gob"

	"github.com/dagconsensus/worker/internal/batchtypes"
)

// wireBatch is the on-disk representation of a Batch. Batch itself has no
// gob tags of its own; wireBatch keeps the encoding local to this backend.
type wireBatch struct {
	Transactions [][]byte
}

func encodeBatch(b *batchtypes.Batch) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(wireBatch{Transactions: b.Transactions}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeBatch(raw []byte) (*batchtypes.Batch, error) {
	var w wireBatch
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&w); err != nil {
		return nil, err
	}
	return &batchtypes.Batch{Transactions: w.Transactions}, nil
}
