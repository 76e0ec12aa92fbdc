package metadata

/**
 * @brief The attachments of the geometry buffer, in attachment order. The
 * depth attachment is deliberately last so the color attachments form a
 * contiguous prefix.
 */
type GBufferAttachment int

const (
	GBufferAttachmentNormals GBufferAttachment = iota
	GBufferAttachmentDiffuse
	GBufferAttachmentSpecular
	GBufferAttachmentEmissive
	GBufferAttachmentMisc
	GBufferAttachmentDepth
	GBufferAttachmentCount
)

func (a GBufferAttachment) String() string {
	switch a {
	case GBufferAttachmentNormals:
		return "normals"
	case GBufferAttachmentDiffuse:
		return "diffuse"
	case GBufferAttachmentSpecular:
		return "specular"
	case GBufferAttachmentEmissive:
		return "emissive"
	case GBufferAttachmentMisc:
		return "misc"
	case GBufferAttachmentDepth:
		return "depth"
	}
	return "invalid"
}

/**
 * @brief A packet for and generated by the rendering system for one frame.
 */
type RenderPacket struct {
	DeltaTime float64
}
