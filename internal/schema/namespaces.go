package schema

// Namespace URIs shared by the builders.
const (
	nsXSI        = "http://www.w3.org/2001/XMLSchema-instance"
	nsLOM        = "http://ltsc.ieee.org/xsd/LOM"
	nsIMSCP      = "http://www.imsglobal.org/xsd/imscp_v1p1"
	nsADLCP      = "http://www.adlnet.org/xsd/adlcp_v1p3"
	nsADLSeq     = "http://www.adlnet.org/xsd/adlseq_v1p3"
	nsADLNav     = "http://www.adlnet.org/xsd/adlnav_v1p3"
	nsIMSSS      = "http://www.imsglobal.org/xsd/imsss"
	nsIMSCP12    = "http://www.imsproject.org/xsd/imscp_rootv1p1p2"
	nsADLCP12    = "http://www.adlnet.org/xsd/adlcp_rootv1p2"
	nsIMSMD12    = "http://www.imsglobal.org/xsd/imsmd_rootv1p2p1"
	lomLocation  = nsLOM + " lom.xsd"
	scormSchema  = "ADL SCORM"
)
