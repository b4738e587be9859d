package logging

import "github.com/zocbuild/zocbuild/pkg/zocbuild"

// Tee forwards every diagnostic to each of its loggers in order.
type Tee []zocbuild.Logger

func (t Tee) Log(severity zocbuild.SeverityLevel, message string) {
	for _, l := range t {
		l.Log(severity, message)
	}
}

var _ zocbuild.Logger = Tee(nil)
