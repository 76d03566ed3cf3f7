// Package main provides localization for the videocropper CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Crop labelled image patches from video frames with the mouse.": "動画のフレームからマウスでラベル付き画像パッチを切り出します。",

		// Arguments
		"Video file to crop patches from.": "パッチを切り出す動画ファイル。",

		// Class flags
		"Number of patch classes (default: 1).":                  "パッチのクラス数（デフォルト: 1）。",
		"Prefix of saved patches for each class, one per class.": "各クラスの保存パッチの接頭辞（クラスごとに1つ）。",

		// Output flags
		"Directory to save patches in (default: ./).":                 "パッチの保存先ディレクトリ（デフォルト: ./）。",
		"Write file names of saved patches to frame_patch_names.txt.": "保存したパッチのファイル名を frame_patch_names.txt に書き出す。",
		"Image format of saved patches (default: .png).":              "保存するパッチの画像形式（デフォルト: .png）。",
		"Output session summary to file (Markdown format).":           "セッションサマリーをファイルに出力（Markdown形式）。",

		// Video and drawing flags
		"YAML configuration file; flags override its values.":     "YAML設定ファイル。フラグの値が優先されます。",
		"Video backend (auto, opencv, ffmpeg).":                   "動画バックエンド（auto, opencv, ffmpeg）。",
		"Path to ffmpeg executable.":                              "ffmpeg実行ファイルのパス。",
		"Outline width of selected boxes in pixels (default: 1).": "選択枠の線幅（ピクセル、デフォルト: 1）。",

		// Logging flags
		"Log level (debug, info, warn, error).": "ログレベル（debug, info, warn, error）。",
		"Suppress all log output.":              "全てのログ出力を抑制。",

		// Runtime messages
		"Failed to write summary: %s": "サマリーの書き込みに失敗しました: %s",
	})
}
