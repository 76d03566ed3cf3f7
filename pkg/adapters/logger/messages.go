package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Startup
		"VideoCropper":   "VideoCropper",
		"Video file: %s": "動画ファイル: %s",
		"Video file: %s (Total number of frames: %d)":          "動画ファイル: %s (総フレーム数: %d)",
		"Opened %s with %s backend (codec %s, %d frames)":      "%s を %s バックエンドで開きました (コーデック %s, %d フレーム)",
		"Video backend: %s":                                    "動画バックエンド: %s",
		"Cropped patches will be saved to %s":                  "切り出したパッチの保存先: %s",
		"Cropped patches will be saved as %s file":             "パッチは %s 形式で保存されます",
		"Prefix of different class of patches are: %s":         "各クラスのパッチ接頭辞: %s",
		"File names of saved patches will be written to %s":    "保存したパッチのファイル名を %s に書き出します",
		"Current frame number: %d --- Current class set to %s": "現在のフレーム番号: %d --- 現在のクラス: %s",
		"Interrupted, shutting down...":                        "中断されました。終了します...",

		// Help
		"Press n to go to next frame. Press p to go to previous frame. Press q to quit program.":                                                                         "n で次のフレーム、p で前のフレーム、q で終了します。",
		"Press a number to change selected class to that number.":                                                                                                        "数字キーで選択クラスをその番号に切り替えます。",
		"Press w to write the current displayed frame to an image file. Saved frame will be under the same directory as cropped patches and will have same image format": "w で表示中のフレームを画像として保存します。保存先と形式はパッチと同じです",
		"Press i for frame number and current selected class info":                                                                                                       "i でフレーム番号と選択中のクラスを表示します",
		"Press h for help on hot keys":                    "h でキー操作のヘルプを表示します",
		"Click on two points to crop a rectangular patch": "2点をクリックすると矩形のパッチを切り出せます",

		// Box selection
		"Press s to save or press d to discard selected patch": "s で保存、d で選択したパッチを破棄します",
		"Cropped patch saved as %s":                            "パッチを %s に保存しました",
		"%d patches cropped and saved for class %s":            "クラス %[2]s のパッチを %[1]d 個保存しました",
		"Selected patch is empty, discarded":                   "選択範囲が空のため破棄しました",
		"Failed to save patch %s: %v":                          "パッチ %s の保存に失敗しました: %v",

		// Navigation
		"Current frame number: %d":                                                                 "現在のフレーム番号: %d",
		"Current selected class is class %s":                                                       "選択中のクラス: %s",
		"Set selected class to %s":                                                                 "選択クラスを %s に変更しました",
		"Class %d is out of range, only %d classes are configured":                                 "クラス %d は範囲外です。設定されているクラスは %d 個です",
		"This is the last frame of the video sequence being cropped. Cannot go to next frame":      "最後のフレームです。次のフレームへは移動できません",
		"This is the first frame of the video sequence being cropped. Cannot go to previous frame": "最初のフレームです。前のフレームへは移動できません",
		"Read failed: %v": "読み込みに失敗しました: %v",
		"Current displayed frame has been written to %s": "表示中のフレームを %s に書き出しました",
		"Failed to write frame %s: %v":                   "フレーム %s の書き出しに失敗しました: %v",

		// Shutdown
		"Are you sure about exiting the program? [y/n]: ": "プログラムを終了しますか? [y/n]: ",
		"Terminating": "終了します",
		"File %s already exists. Continue saving frame patch names will overwrite that file. Do you want to continue? [y/n]: ": "ファイル %s は既に存在します。続けると上書きされます。続行しますか? [y/n]: ",
		"Exit":                       "終了",
		"File %s written and closed": "ファイル %s を書き出しました",
		"Patches saved per class:":   "クラスごとの保存パッチ数:",
		"Summary written to %s":      "サマリーを %s に書き出しました",

		// Adapters (debug)
		"Running %s":                          "%s を実行中",
		"OpenCV could not open %s: %v":        "OpenCV で %s を開けませんでした: %v",
		"Input queue full, dropping event %d": "入力キューが満杯のためイベント %d を破棄しました",
	})
}
