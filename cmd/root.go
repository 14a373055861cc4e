package cmd

import (
	"errors"
	"fmt"
	"os"

	"glaciertk/internal/aws"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"
)

// AppName はコマンド名（ヘルプ文中で使用）
const AppName = "glaciertk"

var (
	region  string
	profile string
	awsCtx  aws.Context
	awsCfg  awssdk.Config
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   AppName,
	Short: "S3 Glacierのアーカイブオブジェクトを管理するツール",
	Long: `S3のアーカイブ系ストレージクラス（GLACIER / DEEP_ARCHIVE / GLACIER_IR）の
オブジェクトを管理するためのツール群です。

  ` + AppName + ` upload   # ダミーファイルを生成してGLACIERクラスでアップロード
  ` + AppName + ` status   # プレフィックス配下のリストア状況を集計
  ` + AppName + ` restore  # プレフィックス配下のオブジェクトにリストアを要求`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&region, "region", "R", "ap-northeast-1", "AWSリージョン")
	RootCmd.PersistentFlags().StringVarP(&profile, "profile", "P", "", "AWSプロファイル")

	// コマンド実行前に共通でプロファイルチェックとAWS設定読み込みを行う
	RootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// ヘルプとversionコマンドの場合はスキップ
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		if err := checkAndSetProfile(cmd); err != nil {
			return err
		}

		awsCtx = aws.Context{Profile: profile, Region: region}
		cfg, err := awsCtx.GetConfig()
		if err != nil {
			cmd.SilenceUsage = true
			return fmt.Errorf("❌ AWS設定の読み込みに失敗: %w", err)
		}
		awsCfg = cfg
		return nil
	}
}

// checkAndSetProfile はプロファイルの確認と設定を行うプライベート関数
func checkAndSetProfile(cmd *cobra.Command) error {
	// プロファイルがすでに指定されている場合は何もしない
	if profile != "" {
		return nil
	}
	// 環境変数からプロファイル取得を試みる
	envProfile := os.Getenv("AWS_PROFILE")
	if envProfile == "" {
		// プロファイルが見つからない場合はエラー
		cmd.SilenceUsage = true // エラー時のUsage表示を抑制
		return errors.New("❌ エラー: プロファイルが指定されていません。-Pオプションまたは AWS_PROFILE 環境変数を指定してください")
	}
	// 環境変数からプロファイルを設定
	profile = envProfile
	cmd.Println("🔍 環境変数 AWS_PROFILE の値 '" + profile + "' を使用します")
	return nil
}
