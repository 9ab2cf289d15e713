// Package proof 负责在项目目录中定位并读取证明产物（*.proof 与 *.pw）。
package proof

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"zklense/internal/logic/core"
)

// 递归搜索时跳过的目录：隐藏目录与常见依赖目录。
// target 不在其列——prover 产物通常就落在 target 下。
var skipDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"build":        true,
}

// FindFileByExtension 在 root 下递归查找第一个指定扩展名的文件。
// ext 不带点，例如 "proof"、"pw"。
func FindFileByExtension(root, ext string) (string, error) {
	var found string
	suffix := "." + ext

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// 单个子目录不可读不应中断整体搜索
			return nil
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || skipDirs[name]) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), suffix) {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if found == "" {
		return "", fmt.Errorf("could not find file with extension .%s under %s", ext, root)
	}
	return found, nil
}

// LoadArtifact 定位并读取 proof / witness 文件，返回产物及两个文件路径。
func LoadArtifact(root string) (*core.ProofArtifact, string, string, error) {
	proofPath, err := FindFileByExtension(root, "proof")
	if err != nil {
		return nil, "", "", err
	}
	witnessPath, err := FindFileByExtension(root, "pw")
	if err != nil {
		return nil, "", "", err
	}

	proofBytes, err := os.ReadFile(proofPath)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to read proof file %s: %w", proofPath, err)
	}
	witnessBytes, err := os.ReadFile(witnessPath)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to read witness file %s: %w", witnessPath, err)
	}

	return &core.ProofArtifact{
		Proof:   proofBytes,
		Witness: witnessBytes,
	}, proofPath, witnessPath, nil
}
