package nn

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/relay"
	"github.com/gomlx/relay/op"
	attrs "github.com/gomlx/relay/types/nn"
	"github.com/pkg/errors"
)

// makeCall is the shared assembly step: it resolves the operator descriptor
// by name and binds it with the inputs and the populated attribute record
// into a call node.
//
// The descriptor lookup is the only point that can fail; every construction
// function funnels through it.
func makeCall(opName string, a relay.Attrs, inputs ...relay.Expr) (*relay.Call, error) {
	o, err := op.Get(opName)
	if err != nil {
		return nil, err
	}
	return relay.NewCall(o, inputs, a), nil
}

// Conv2D builds a call node for a plain convolution over {data, weight}.
//
// opName selects the registered operator, e.g. "nn.conv2d"; operators of
// other dimensionality ("nn.conv1d", "nn.conv3d") share this construction
// function, the caller supplies sequences of the matching rank.
func Conv2D(data, weight relay.Expr,
	strides, padding, dilation []relay.IndexExpr,
	groups int, channels relay.IndexExpr, kernelSize []relay.IndexExpr,
	dataLayout, kernelLayout, outLayout string, outDType dtypes.DType,
	opName string) (*relay.Call, error) {
	a := &attrs.Conv2DAttrs{
		Strides:      strides,
		Padding:      padding,
		Dilation:     dilation,
		Groups:       groups,
		Channels:     channels,
		KernelSize:   kernelSize,
		DataLayout:   dataLayout,
		KernelLayout: kernelLayout,
		OutLayout:    outLayout,
		OutDType:     outDType,
	}
	return makeCall(opName, a, data, weight)
}

// Conv2DWinograd builds a call node for a convolution whose weights were
// pre-transformed for the winograd algorithm with the given tile size.
// The inputs are {data, weight}, like Conv2D; only the attribute record
// differs.
func Conv2DWinograd(data, weight relay.Expr, tileSize int,
	strides, padding, dilation []relay.IndexExpr,
	groups int, channels relay.IndexExpr, kernelSize []relay.IndexExpr,
	dataLayout, kernelLayout, outLayout string, outDType dtypes.DType,
	opName string) (*relay.Call, error) {
	a := &attrs.Conv2DWinogradAttrs{
		TileSize:     tileSize,
		Strides:      strides,
		Padding:      padding,
		Dilation:     dilation,
		Groups:       groups,
		Channels:     channels,
		KernelSize:   kernelSize,
		DataLayout:   dataLayout,
		KernelLayout: kernelLayout,
		OutLayout:    outLayout,
		OutDType:     outDType,
	}
	return makeCall(opName, a, data, weight)
}

// Conv2DGemm builds a call node for a convolution to be lowered as GEMM.
// The inputs are {data, weight}, like Conv2D; only the attribute record type
// differs, which is what routes the node to the GEMM lowering downstream.
func Conv2DGemm(data, weight relay.Expr,
	strides, padding, dilation []relay.IndexExpr,
	groups int, channels relay.IndexExpr, kernelSize []relay.IndexExpr,
	dataLayout, kernelLayout, outLayout string, outDType dtypes.DType,
	opName string) (*relay.Call, error) {
	a := &attrs.Conv2DGemmAttrs{
		Strides:      strides,
		Padding:      padding,
		Dilation:     dilation,
		Groups:       groups,
		Channels:     channels,
		KernelSize:   kernelSize,
		DataLayout:   dataLayout,
		KernelLayout: kernelLayout,
		OutLayout:    outLayout,
		OutDType:     outDType,
	}
	return makeCall(opName, a, data, weight)
}

// Conv2DTranspose builds a call node for a transposed (aka. fractionally
// strided) convolution over {data, weight}. outputPadding disambiguates the
// output shape when strides are larger than one.
func Conv2DTranspose(data, weight relay.Expr,
	strides, padding, dilation []relay.IndexExpr,
	groups int, channels relay.IndexExpr, kernelSize []relay.IndexExpr,
	dataLayout, kernelLayout, outLayout string, outputPadding []relay.IndexExpr,
	outDType dtypes.DType, opName string) (*relay.Call, error) {
	a := &attrs.Conv2DTransposeAttrs{
		Strides:       strides,
		Padding:       padding,
		Dilation:      dilation,
		Groups:        groups,
		Channels:      channels,
		KernelSize:    kernelSize,
		DataLayout:    dataLayout,
		KernelLayout:  kernelLayout,
		OutLayout:     outLayout,
		OutputPadding: outputPadding,
		OutDType:      outDType,
	}
	return makeCall(opName, a, data, weight)
}

// DeformableConv2D builds a call node for a deformable convolution over
// {data, offset, weight} -- the offset tensor always goes between data and
// weight, downstream passes rely on that ordering.
//
// channels and kernelSize are concrete integers here, not IndexExpr: the
// deformable lowering needs them resolved at construction time.
func DeformableConv2D(data, offset, weight relay.Expr,
	strides, padding, dilation []relay.IndexExpr,
	deformableGroups, groups int, channels int64, kernelSize []int64,
	dataLayout, kernelLayout, outLayout string, outDType dtypes.DType,
	opName string) (*relay.Call, error) {
	a := &attrs.DeformableConv2DAttrs{
		Strides:          strides,
		Padding:          padding,
		Dilation:         dilation,
		DeformableGroups: deformableGroups,
		Groups:           groups,
		Channels:         channels,
		KernelSize:       kernelSize,
		DataLayout:       dataLayout,
		KernelLayout:     kernelLayout,
		OutLayout:        outLayout,
		OutDType:         outDType,
	}
	return makeCall(opName, a, data, offset, weight)
}

// fusedConvNumLayers is the number of layers the fused builder populates.
// The record supports N layers in principle; this construction path only
// ever produces two.
const fusedConvNumLayers = 2

// FusedConv2D builds a call node for two convolution layers fused into one
// operator, over {data, weight1, bias1, weight2, bias2}.
//
// The *Array parameters hold one entry per fused layer and must all have
// exactly two entries; a mismatch fails with a malformed-configuration
// error before any node is built.
func FusedConv2D(data, weight1, bias1, weight2, bias2 relay.Expr,
	stridesArray, paddingArray, dilationArray [][]relay.IndexExpr,
	groupsArray []int64, channelsArray []relay.IndexExpr, kernelSizeArray [][]relay.IndexExpr,
	postOpArray, dataLayoutArray, kernelLayoutArray, outLayoutArray []string,
	outDType dtypes.DType, opName string) (*relay.Call, error) {
	for _, seq := range []struct {
		name   string
		length int
	}{
		{"strides_array", len(stridesArray)},
		{"padding_array", len(paddingArray)},
		{"dilation_array", len(dilationArray)},
		{"groups_array", len(groupsArray)},
		{"channels_array", len(channelsArray)},
		{"kernel_size_array", len(kernelSizeArray)},
		{"post_op_array", len(postOpArray)},
		{"data_layout_array", len(dataLayoutArray)},
		{"kernel_layout_array", len(kernelLayoutArray)},
		{"out_layout_array", len(outLayoutArray)},
	} {
		if seq.length != fusedConvNumLayers {
			return nil, errors.Errorf(
				"malformed fused conv2d configuration: %s has %d entries, want one per layer (%d)",
				seq.name, seq.length, fusedConvNumLayers)
		}
	}
	a := &attrs.FusedConv2DAttrs{
		NumLayers:         fusedConvNumLayers,
		StridesArray:      stridesArray,
		PaddingArray:      paddingArray,
		DilationArray:     dilationArray,
		GroupsArray:       groupsArray,
		ChannelsArray:     channelsArray,
		KernelSizeArray:   kernelSizeArray,
		PostOpArray:       postOpArray,
		DataLayoutArray:   dataLayoutArray,
		KernelLayoutArray: kernelLayoutArray,
		OutLayoutArray:    outLayoutArray,
		OutDType:          outDType,
	}
	return makeCall(opName, a, data, weight1, bias1, weight2, bias2)
}
