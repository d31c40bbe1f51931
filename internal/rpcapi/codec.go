// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpcapi

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content subtype of the CBOR codec.
const CodecName = "cbor"

type cborCodec struct{}

func (cborCodec) Marshal(v any) ([]byte, error) {
	data, err := cbor.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("cbor marshal %T: %w", v, err)
	}
	return data, nil
}

func (cborCodec) Unmarshal(data []byte, v any) error {
	if err := cbor.Unmarshal(data, v); err != nil {
		return fmt.Errorf("cbor unmarshal %T: %w", v, err)
	}
	return nil
}

func (cborCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(cborCodec{})
}

// CallOption selects the CBOR codec for every call on a client connection:
//
//	grpc.NewClient(addr, grpc.WithDefaultCallOptions(rpcapi.CallOption()))
func CallOption() grpc.CallOption {
	return grpc.CallContentSubtype(CodecName)
}
