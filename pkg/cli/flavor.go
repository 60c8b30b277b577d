package cli

import "runtime"

// Flavor resolves the active flavor for the `flavor` verb: an explicit
// -f override, else EUPS_FLAVOR (already folded into ctx.Config.Flavor),
// else platform auto-detection, grounded on original_source/'s
// python/eups/utils.py determineFlavor (uname-based, generalized here to
// Go's runtime.GOOS/GOARCH since no process-exec uname call belongs in
// an otherwise-pure resolver).
func Flavor(ctx *Context, override string) string {
	if f := ctx.Flavor(override); f != "NULL" {
		return f
	}
	return detectFlavor()
}

func detectFlavor() string {
	switch runtime.GOOS {
	case "linux":
		if runtime.GOARCH == "amd64" || runtime.GOARCH == "arm64" {
			return "Linux64"
		}
		return "Linux"
	case "darwin":
		if runtime.GOARCH == "arm64" {
			return "DarwinArm64"
		}
		return "DarwinX86"
	default:
		return "NULL"
	}
}
