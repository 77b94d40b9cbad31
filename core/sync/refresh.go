package sync

import (
	"context"
	"os/exec"

	"go.uber.org/zap"
)

// Refresh pulls the latest upstream dataset via the git submodule. A
// refresh failure is a warning only: the merge proceeds with whatever
// upstream data is already on disk.
func Refresh(ctx context.Context, log *zap.Logger, repoDir, submodule string) {
	cmd := exec.CommandContext(ctx, "git", "submodule", "update", "--remote", submodule)
	cmd.Dir = repoDir

	out, err := cmd.CombinedOutput()
	if err != nil {
		log.Warn("upstream refresh failed, merging with data on disk",
			zap.String("submodule", submodule),
			zap.ByteString("output", out),
			zap.Error(err),
		)
		return
	}
	log.Info("upstream refreshed", zap.String("submodule", submodule))
}
