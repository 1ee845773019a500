// Package nn holds the construction functions for the neural-network
// convolution operators: they translate an operator invocation into a
// generic call node carrying the matching attribute record from types/nn.
//
// The functions only package what the caller already decided: no numeric
// validation, no inference of omitted parameters, and no operator selection
// happens here. The one exception is the fused builder, which checks the
// cardinality of its per-layer configuration (see FusedConv2D).
//
// Ownership convention: slices passed to a construction function are moved
// into the attribute record. The caller relinquishes them and must not
// mutate them afterwards.
package nn

import "github.com/gomlx/relay/op"

// Operator descriptors targeted by the construction functions in this
// package. The registry is read-only after initialization.
var (
	// Conv2DOp also serves "nn.conv1d" and "nn.conv3d" below: the three
	// share the Conv2DAttrs record and the Conv2D construction function,
	// the name selects the dimensionality.
	Conv2DOp = op.Register(&op.Op{
		Name:         "nn.conv2d",
		Description:  "2D convolution over [data, weight].",
		NumInputs:    2,
		AttrsName:    "relay.attrs.Conv2DAttrs",
		SupportLevel: 2,
	})

	Conv1DOp = op.Register(&op.Op{
		Name:         "nn.conv1d",
		Description:  "1D convolution over [data, weight].",
		NumInputs:    2,
		AttrsName:    "relay.attrs.Conv2DAttrs",
		SupportLevel: 2,
	})

	Conv3DOp = op.Register(&op.Op{
		Name:         "nn.conv3d",
		Description:  "3D convolution over [data, weight].",
		NumInputs:    2,
		AttrsName:    "relay.attrs.Conv2DAttrs",
		SupportLevel: 2,
	})

	Conv2DWinogradOp = op.Register(&op.Op{
		Name:         "nn.contrib_conv2d_winograd_without_weight_transform",
		Description:  "2D convolution with winograd-transformed weights.",
		NumInputs:    2,
		AttrsName:    "relay.attrs.Conv2DWinogradAttrs",
		SupportLevel: 10,
	})

	Conv2DGemmOp = op.Register(&op.Op{
		Name:         "nn.contrib_conv2d_gemm_without_weight_transform",
		Description:  "2D convolution lowered to GEMM with pre-transformed weights.",
		NumInputs:    2,
		AttrsName:    "relay.attrs.Conv2DGemmAttrs",
		SupportLevel: 10,
	})

	Conv2DTransposeOp = op.Register(&op.Op{
		Name:         "nn.conv2d_transpose",
		Description:  "Transposed 2D convolution over [data, weight].",
		NumInputs:    2,
		AttrsName:    "relay.attrs.Conv2DTransposeAttrs",
		SupportLevel: 2,
	})

	DeformableConv2DOp = op.Register(&op.Op{
		Name:         "nn.deformable_conv2d",
		Description:  "Deformable 2D convolution over [data, offset, weight].",
		NumInputs:    3,
		AttrsName:    "relay.attrs.DeformableConv2DAttrs",
		SupportLevel: 5,
	})

	FusedConv2DOp = op.Register(&op.Op{
		Name:         "nn.fused_conv2d",
		Description:  "Fused dual-layer 2D convolution over [data, weight1, bias1, weight2, bias2].",
		NumInputs:    5,
		AttrsName:    "relay.attrs.FusedConv2DAttrs",
		SupportLevel: 10,
	})
)
