package visitor

// MaskNotProvided is shown when a CNIC is absent or too short to mask.
const MaskNotProvided = "Not provided"

// MaskCNIC masks a national ID for display: the first five characters, a
// fixed run of asterisks, then the final character. Inputs shorter than six
// characters (including the empty string) yield MaskNotProvided. The
// transform is byte-based and locale-independent.
func MaskCNIC(cnic string) string {
	if len(cnic) < 6 {
		return MaskNotProvided
	}
	return cnic[:5] + "-*******-" + cnic[len(cnic)-1:]
}
