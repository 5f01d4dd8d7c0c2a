package render

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/reoring/itksn"
)

// encMode uses core deterministic encoding: the same tree always produces
// the same bytes.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("render: CBOR encoder initialization failed: " + err.Error())
	}
}

func marshalCBOR(v itksn.Value, o Options) ([]byte, error) {
	return encMode.Marshal(toMap(plain(v, o)))
}
