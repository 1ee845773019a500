// Package nn defines the attribute records carried by the neural-network
// operator call nodes.
//
// Each record is a flat value object holding the configuration of one
// operator instantiation. The construction functions (in the top-level nn
// package) populate every field exactly once; the record is exclusively
// owned by the resulting call node and must not be mutated afterwards.
// Downstream passes recover the concrete type with a type assertion on
// relay.Call.Attrs.
package nn

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/relay"
)

// Conv2DAttrs is the attribute record of plain 2D convolution
// ("nn.conv2d") and of the operators that share its configuration, like
// "nn.conv1d" and "nn.conv3d".
type Conv2DAttrs struct {
	Strides      []relay.IndexExpr
	Padding      []relay.IndexExpr
	Dilation     []relay.IndexExpr
	Groups       int
	Channels     relay.IndexExpr
	KernelSize   []relay.IndexExpr
	DataLayout   string
	KernelLayout string
	OutLayout    string
	OutDType     dtypes.DType
}

// AttrsName returns the registered type name of the record.
func (a *Conv2DAttrs) AttrsName() string { return "relay.attrs.Conv2DAttrs" }

// AttrPairs lists the record's fields in declaration order.
func (a *Conv2DAttrs) AttrPairs() []relay.AttrPair {
	return []relay.AttrPair{
		{Key: "strides", Value: a.Strides},
		{Key: "padding", Value: a.Padding},
		{Key: "dilation", Value: a.Dilation},
		{Key: "groups", Value: a.Groups},
		{Key: "channels", Value: a.Channels},
		{Key: "kernel_size", Value: a.KernelSize},
		{Key: "data_layout", Value: a.DataLayout},
		{Key: "kernel_layout", Value: a.KernelLayout},
		{Key: "out_layout", Value: a.OutLayout},
		{Key: "out_dtype", Value: a.OutDType},
	}
}

// Conv2DWinogradAttrs is the attribute record of winograd-transformed 2D
// convolution. It extends Conv2DAttrs with the winograd tile size, which
// comes first.
type Conv2DWinogradAttrs struct {
	TileSize     int
	Strides      []relay.IndexExpr
	Padding      []relay.IndexExpr
	Dilation     []relay.IndexExpr
	Groups       int
	Channels     relay.IndexExpr
	KernelSize   []relay.IndexExpr
	DataLayout   string
	KernelLayout string
	OutLayout    string
	OutDType     dtypes.DType
}

// AttrsName returns the registered type name of the record.
func (a *Conv2DWinogradAttrs) AttrsName() string { return "relay.attrs.Conv2DWinogradAttrs" }

// AttrPairs lists the record's fields in declaration order.
func (a *Conv2DWinogradAttrs) AttrPairs() []relay.AttrPair {
	return []relay.AttrPair{
		{Key: "tile_size", Value: a.TileSize},
		{Key: "strides", Value: a.Strides},
		{Key: "padding", Value: a.Padding},
		{Key: "dilation", Value: a.Dilation},
		{Key: "groups", Value: a.Groups},
		{Key: "channels", Value: a.Channels},
		{Key: "kernel_size", Value: a.KernelSize},
		{Key: "data_layout", Value: a.DataLayout},
		{Key: "kernel_layout", Value: a.KernelLayout},
		{Key: "out_layout", Value: a.OutLayout},
		{Key: "out_dtype", Value: a.OutDType},
	}
}

// Conv2DGemmAttrs is the attribute record of GEMM-lowered 2D convolution.
// The fields are those of Conv2DAttrs; the distinct type is what routes the
// call node to the GEMM lowering downstream.
type Conv2DGemmAttrs struct {
	Strides      []relay.IndexExpr
	Padding      []relay.IndexExpr
	Dilation     []relay.IndexExpr
	Groups       int
	Channels     relay.IndexExpr
	KernelSize   []relay.IndexExpr
	DataLayout   string
	KernelLayout string
	OutLayout    string
	OutDType     dtypes.DType
}

// AttrsName returns the registered type name of the record.
func (a *Conv2DGemmAttrs) AttrsName() string { return "relay.attrs.Conv2DGemmAttrs" }

// AttrPairs lists the record's fields in declaration order.
func (a *Conv2DGemmAttrs) AttrPairs() []relay.AttrPair {
	return []relay.AttrPair{
		{Key: "strides", Value: a.Strides},
		{Key: "padding", Value: a.Padding},
		{Key: "dilation", Value: a.Dilation},
		{Key: "groups", Value: a.Groups},
		{Key: "channels", Value: a.Channels},
		{Key: "kernel_size", Value: a.KernelSize},
		{Key: "data_layout", Value: a.DataLayout},
		{Key: "kernel_layout", Value: a.KernelLayout},
		{Key: "out_layout", Value: a.OutLayout},
		{Key: "out_dtype", Value: a.OutDType},
	}
}

// Conv2DTransposeAttrs is the attribute record of transposed 2D convolution.
// It extends Conv2DAttrs with the output padding, placed after the layouts
// and before the output dtype.
type Conv2DTransposeAttrs struct {
	Strides       []relay.IndexExpr
	Padding       []relay.IndexExpr
	Dilation      []relay.IndexExpr
	Groups        int
	Channels      relay.IndexExpr
	KernelSize    []relay.IndexExpr
	DataLayout    string
	KernelLayout  string
	OutLayout     string
	OutputPadding []relay.IndexExpr
	OutDType      dtypes.DType
}

// AttrsName returns the registered type name of the record.
func (a *Conv2DTransposeAttrs) AttrsName() string { return "relay.attrs.Conv2DTransposeAttrs" }

// AttrPairs lists the record's fields in declaration order.
func (a *Conv2DTransposeAttrs) AttrPairs() []relay.AttrPair {
	return []relay.AttrPair{
		{Key: "strides", Value: a.Strides},
		{Key: "padding", Value: a.Padding},
		{Key: "dilation", Value: a.Dilation},
		{Key: "groups", Value: a.Groups},
		{Key: "channels", Value: a.Channels},
		{Key: "kernel_size", Value: a.KernelSize},
		{Key: "data_layout", Value: a.DataLayout},
		{Key: "kernel_layout", Value: a.KernelLayout},
		{Key: "out_layout", Value: a.OutLayout},
		{Key: "output_padding", Value: a.OutputPadding},
		{Key: "out_dtype", Value: a.OutDType},
	}
}

// DeformableConv2DAttrs is the attribute record of deformable 2D
// convolution.
//
// Channels and KernelSize are concrete integers, not IndexExpr: the
// deformable lowering needs them resolved at construction time, so the
// weaker typing is intentional.
type DeformableConv2DAttrs struct {
	Strides          []relay.IndexExpr
	Padding          []relay.IndexExpr
	Dilation         []relay.IndexExpr
	DeformableGroups int
	Groups           int
	Channels         int64
	KernelSize       []int64
	DataLayout       string
	KernelLayout     string
	OutLayout        string
	OutDType         dtypes.DType
}

// AttrsName returns the registered type name of the record.
func (a *DeformableConv2DAttrs) AttrsName() string { return "relay.attrs.DeformableConv2DAttrs" }

// AttrPairs lists the record's fields in declaration order.
func (a *DeformableConv2DAttrs) AttrPairs() []relay.AttrPair {
	return []relay.AttrPair{
		{Key: "strides", Value: a.Strides},
		{Key: "padding", Value: a.Padding},
		{Key: "dilation", Value: a.Dilation},
		{Key: "deformable_groups", Value: a.DeformableGroups},
		{Key: "groups", Value: a.Groups},
		{Key: "channels", Value: a.Channels},
		{Key: "kernel_size", Value: a.KernelSize},
		{Key: "data_layout", Value: a.DataLayout},
		{Key: "kernel_layout", Value: a.KernelLayout},
		{Key: "out_layout", Value: a.OutLayout},
		{Key: "out_dtype", Value: a.OutDType},
	}
}

// FusedConv2DAttrs is the attribute record of the fused dual-layer 2D
// convolution. Each *Array field holds one entry per fused layer, and every
// one of them must have exactly NumLayers entries.
type FusedConv2DAttrs struct {
	NumLayers         int
	StridesArray      [][]relay.IndexExpr
	PaddingArray      [][]relay.IndexExpr
	DilationArray     [][]relay.IndexExpr
	GroupsArray       []int64
	ChannelsArray     []relay.IndexExpr
	KernelSizeArray   [][]relay.IndexExpr
	PostOpArray       []string
	DataLayoutArray   []string
	KernelLayoutArray []string
	OutLayoutArray    []string
	OutDType          dtypes.DType
}

// AttrsName returns the registered type name of the record.
func (a *FusedConv2DAttrs) AttrsName() string { return "relay.attrs.FusedConv2DAttrs" }

// AttrPairs lists the record's fields in declaration order.
func (a *FusedConv2DAttrs) AttrPairs() []relay.AttrPair {
	return []relay.AttrPair{
		{Key: "num_layers", Value: a.NumLayers},
		{Key: "strides_array", Value: a.StridesArray},
		{Key: "padding_array", Value: a.PaddingArray},
		{Key: "dilation_array", Value: a.DilationArray},
		{Key: "groups_array", Value: a.GroupsArray},
		{Key: "channels_array", Value: a.ChannelsArray},
		{Key: "kernel_size_array", Value: a.KernelSizeArray},
		{Key: "post_op_array", Value: a.PostOpArray},
		{Key: "data_layout_array", Value: a.DataLayoutArray},
		{Key: "kernel_layout_array", Value: a.KernelLayoutArray},
		{Key: "out_layout_array", Value: a.OutLayoutArray},
		{Key: "out_dtype", Value: a.OutDType},
	}
}
