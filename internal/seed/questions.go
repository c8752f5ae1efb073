package seed

import "certquiz/internal/models"

// Questions is the built-in 情報セキュリティマネジメント question bank, covering
// every category at each level.
var Questions = []models.QuestionSeed{
	// 情報セキュリティの基礎
	{
		Category:     models.CategorySecurityBasics,
		Level:        1,
		QuestionNo:   1,
		QuestionText: "情報セキュリティの三要素（CIA）に含まれないものはどれか。",
		Choices: []string{
			"機密性",
			"完全性",
			"可用性",
			"効率性",
		},
		CorrectIndex: 3,
		Explanation:  "情報セキュリティの三要素は機密性（Confidentiality）、完全性（Integrity）、可用性（Availability）です。効率性は含まれません。",
	},
	{
		Category:     models.CategorySecurityBasics,
		Level:        2,
		QuestionNo:   1,
		QuestionText: "情報セキュリティにおける「真正性」の説明として適切なものはどれか。",
		Choices: []string{
			"情報が必要なときに利用できること",
			"利用者や情報が主張どおり本物であると確実にできること",
			"情報が漏えいしないこと",
			"処理が正しく完了したことを後から否認できないこと",
		},
		CorrectIndex: 1,
		Explanation:  "真正性（Authenticity）は、エンティティが主張どおりであることを確実にする特性です。否認防止や可用性とは区別されます。",
	},
	{
		Category:     models.CategorySecurityBasics,
		Level:        3,
		QuestionNo:   1,
		QuestionText: "多要素認証の組合せとして適切なものはどれか。",
		Choices: []string{
			"パスワードと秘密の質問",
			"パスワードとワンタイムパスワード生成器",
			"指紋と顔認証",
			"ICカードと社員証",
		},
		CorrectIndex: 1,
		Explanation:  "多要素認証は知識・所持・生体という異なる要素を組み合わせます。パスワード（知識）とトークン（所持）の組合せが該当します。",
	},

	// 情報セキュリティ関連法規
	{
		Category:     models.CategorySecurityLaw,
		Level:        1,
		QuestionNo:   1,
		QuestionText: "不正アクセス禁止法で禁止されている行為はどれか。",
		Choices: []string{
			"他人の識別符号を無断で使用してログインする行為",
			"自分のPCにセキュリティソフトを導入しない行為",
			"業務時間中に私的なWebサイトを閲覧する行為",
			"公開されているWebサイトを閲覧する行為",
		},
		CorrectIndex: 0,
		Explanation:  "不正アクセス禁止法は、他人の識別符号（ID・パスワード等）の不正利用やアクセス制御の回避によるアクセスを禁止しています。",
	},
	{
		Category:     models.CategorySecurityLaw,
		Level:        2,
		QuestionNo:   1,
		QuestionText: "個人情報保護法における「要配慮個人情報」に該当するものはどれか。",
		Choices: []string{
			"氏名と電話番号",
			"勤務先の部署名",
			"病歴",
			"メールアドレス",
		},
		CorrectIndex: 2,
		Explanation:  "要配慮個人情報は、人種、信条、病歴、犯罪歴など、不当な差別や偏見が生じないよう特に配慮を要する情報です。取得には原則本人の同意が必要です。",
	},
	{
		Category:     models.CategorySecurityLaw,
		Level:        3,
		QuestionNo:   1,
		QuestionText: "電子署名法に関する記述として適切なものはどれか。",
		Choices: []string{
			"電子署名はいかなる場合も手書き署名と同等の効力を持たない",
			"一定の要件を満たす電子署名が行われた電磁的記録は真正に成立したものと推定される",
			"電子署名の利用には総務大臣の個別許可が必要である",
			"電子署名は暗号化を一切伴わない",
		},
		CorrectIndex: 1,
		Explanation:  "電子署名法第3条により、本人による一定の電子署名が行われた電磁的記録は、真正に成立したものと推定されます。",
	},

	// 情報セキュリティ管理
	{
		Category:     models.CategorySecurityManagement,
		Level:        1,
		QuestionNo:   1,
		QuestionText: "ISMSにおけるPDCAサイクルの「C」に該当する活動はどれか。",
		Choices: []string{
			"情報セキュリティ方針の策定",
			"管理策の導入と運用",
			"運用状況の監視と有効性の評価",
			"是正処置の実施",
		},
		CorrectIndex: 2,
		Explanation:  "Check（点検）では、ISMSの運用状況を監視・測定し、方針や目的に照らして有効性を評価します。",
	},
	{
		Category:     models.CategorySecurityManagement,
		Level:        2,
		QuestionNo:   1,
		QuestionText: "情報資産の分類を行う主な目的はどれか。",
		Choices: []string{
			"資産の重要度に応じた適切な管理策を適用するため",
			"資産管理台帳の件数を減らすため",
			"すべての資産に同一の対策を適用するため",
			"資産の購入費用を削減するため",
		},
		CorrectIndex: 0,
		Explanation:  "情報資産を機密性や重要度で分類することで、重要度に見合った保護レベルの管理策を選択できます。",
	},
	{
		Category:     models.CategorySecurityManagement,
		Level:        3,
		QuestionNo:   1,
		QuestionText: "情報セキュリティ内部監査において監査人に求められることはどれか。",
		Choices: []string{
			"監査対象部門の業務を兼任していること",
			"監査対象から独立した立場で客観的に評価すること",
			"指摘事項を自ら修正すること",
			"経営層の指示どおりの監査結果を報告すること",
		},
		CorrectIndex: 1,
		Explanation:  "内部監査人には監査対象からの独立性と客観性が求められます。自部門の監査や指摘事項の自己修正は独立性を損ないます。",
	},

	// リスクマネジメント
	{
		Category:     models.CategoryRiskManagement,
		Level:        1,
		QuestionNo:   1,
		QuestionText: "リスクアセスメントを構成するプロセスの組合せとして適切なものはどれか。",
		Choices: []string{
			"リスク特定、リスク分析、リスク評価",
			"リスク回避、リスク低減、リスク移転",
			"リスク監視、リスク報告、リスク記録",
			"リスク受容、リスク共有、リスク保有",
		},
		CorrectIndex: 0,
		Explanation:  "リスクアセスメントは、リスク特定・リスク分析・リスク評価の三つのプロセスで構成されます。回避・低減などはリスク対応の選択肢です。",
	},
	{
		Category:     models.CategoryRiskManagement,
		Level:        2,
		QuestionNo:   1,
		QuestionText: "リスク対応のうち「リスク移転」に該当するものはどれか。",
		Choices: []string{
			"該当業務から撤退する",
			"サイバー保険に加入する",
			"アクセス制御を強化する",
			"リスクをそのまま受け入れる",
		},
		CorrectIndex: 1,
		Explanation:  "リスク移転（共有）は、保険や外部委託によってリスクの影響を第三者と分担する対応です。撤退は回避、強化は低減に該当します。",
	},
	{
		Category:     models.CategoryRiskManagement,
		Level:        3,
		QuestionNo:   1,
		QuestionText: "残留リスクの説明として適切なものはどれか。",
		Choices: []string{
			"リスク対応を行った後に残るリスク",
			"リスク特定で見落とされたリスク",
			"発生確率がゼロのリスク",
			"他社に移転したリスク",
		},
		CorrectIndex: 0,
		Explanation:  "残留リスクは、リスク対応を実施した後になお残るリスクです。組織はその大きさを把握し、受容可能かどうかを判断する必要があります。",
	},

	// 情報セキュリティ対策（技術）
	{
		Category:     models.CategoryTechnicalMeasures,
		Level:        1,
		QuestionNo:   1,
		QuestionText: "ウイルス対策ソフトの定義ファイルを最新に保つ目的はどれか。",
		Choices: []string{
			"PCの処理速度を向上させるため",
			"新たに出現したマルウェアを検知できるようにするため",
			"ハードディスクの空き容量を増やすため",
			"OSのライセンスを更新するため",
		},
		CorrectIndex: 1,
		Explanation:  "定義ファイル（シグネチャ）には既知マルウェアの特徴が登録されています。最新化することで新種への検知能力を維持します。",
	},
	{
		Category:     models.CategoryTechnicalMeasures,
		Level:        2,
		QuestionNo:   1,
		QuestionText: "WAF（Web Application Firewall）の主な目的はどれか。",
		Choices: []string{
			"Webアプリケーションへの攻撃を検知・遮断する",
			"Webサーバーの負荷を分散する",
			"Webページの表示速度を改善する",
			"Webサイトの検索順位を向上させる",
		},
		CorrectIndex: 0,
		Explanation:  "WAFはSQLインジェクションやクロスサイトスクリプティングなど、Webアプリケーション層への攻撃を検知・遮断します。",
	},
	{
		Category:     models.CategoryTechnicalMeasures,
		Level:        3,
		QuestionNo:   1,
		QuestionText: "ディジタル署名で送信者が署名の生成に使用する鍵はどれか。",
		Choices: []string{
			"送信者の公開鍵",
			"送信者の秘密鍵",
			"受信者の公開鍵",
			"受信者の秘密鍵",
		},
		CorrectIndex: 1,
		Explanation:  "ディジタル署名は送信者の秘密鍵で生成し、受信者は送信者の公開鍵で検証します。これにより改ざん検知と送信者の確認ができます。",
	},

	// 情報セキュリティ対策（人的・組織的）
	{
		Category:     models.CategoryHumanOrgMeasures,
		Level:        1,
		QuestionNo:   1,
		QuestionText: "クリアデスクポリシーの目的として適切なものはどれか。",
		Choices: []string{
			"机上の書類や媒体からの情報漏えいを防ぐ",
			"オフィスの美観を保つ",
			"文房具の紛失を防ぐ",
			"座席の自由化を進める",
		},
		CorrectIndex: 0,
		Explanation:  "クリアデスクは、離席時や退社時に書類や記憶媒体を放置しないことで、のぞき見や持ち去りによる情報漏えいを防ぐ対策です。",
	},
	{
		Category:     models.CategoryHumanOrgMeasures,
		Level:        2,
		QuestionNo:   1,
		QuestionText: "標的型攻撃メール訓練の主な目的はどれか。",
		Choices: []string{
			"メールサーバーの性能を測定する",
			"従業員の不審メールへの対応力を高める",
			"迷惑メールフィルタの精度を検証する",
			"攻撃者を特定する",
		},
		CorrectIndex: 1,
		Explanation:  "訓練メールを送って開封時の注意喚起や報告手順の確認を行うことで、従業員が実際の標的型メールに適切に対応できるようにします。",
	},
	{
		Category:     models.CategoryHumanOrgMeasures,
		Level:        3,
		QuestionNo:   1,
		QuestionText: "職務の分離を実施する目的として適切なものはどれか。",
		Choices: []string{
			"一人の担当者による不正や誤りの機会を減らす",
			"担当者の業務負荷を均等にする",
			"人件費を削減する",
			"決裁までの時間を短縮する",
		},
		CorrectIndex: 0,
		Explanation:  "申請と承認、開発と運用などの職務を分離することで、単独の担当者が不正を完結させたり誤りが見過ごされたりする機会を減らします。",
	},

	// ネットワークとセキュリティ
	{
		Category:     models.CategoryNetworkSecurity,
		Level:        1,
		QuestionNo:   1,
		QuestionText: "SSL/TLSプロトコルの主な目的は何か。",
		Choices: []string{
			"ネットワークの速度を向上させる",
			"インターネット通信の暗号化と認証を提供する",
			"ウイルスの検出と削除を行う",
			"ユーザーの位置情報を特定する",
		},
		CorrectIndex: 1,
		Explanation:  "SSL/TLSプロトコルは、インターネット上の通信を暗号化し、サーバーとクライアント間の認証を提供して、安全な通信を実現します。",
	},
	{
		Category:     models.CategoryNetworkSecurity,
		Level:        1,
		QuestionNo:   2,
		QuestionText: "パスワードポリシーとして推奨されるのはどれか。",
		Choices: []string{
			"1年に1回程度の変更でよい",
			"生年月日や連続した数字の使用は避ける",
			"わかりやすいパスワードを使う",
			"すべてのシステムで同じパスワードを使う",
		},
		CorrectIndex: 1,
		Explanation:  "強力なパスワードポリシーでは、予測しやすい情報の使用を避け、十分な複雑性と定期的な更新を求めることが推奨されます。",
	},
	{
		Category:     models.CategoryNetworkSecurity,
		Level:        2,
		QuestionNo:   1,
		QuestionText: "VPN（仮想プライベートネットワーク）の主な利点は何か。",
		Choices: []string{
			"インターネット接続を高速化する",
			"公開ネットワークを使用しながら安全な通信を実現する",
			"すべてのウイルスを防止する",
			"パスワードの必要性をなくす",
		},
		CorrectIndex: 1,
		Explanation:  "VPNは公開ネットワークを通じても、トンネリングと暗号化により、あたかもプライベートネットワークで通信しているかのような安全な環境を提供します。",
	},
	{
		Category:     models.CategoryNetworkSecurity,
		Level:        3,
		QuestionNo:   1,
		QuestionText: "DMZ（非武装地帯）の目的として最も適切なものはどれか。",
		Choices: []string{
			"インターネットのすべての危険性を完全に防ぐ",
			"Webサーバーなどの公開サーバーを内部ネットワークから分離する",
			"ユーザーのデータベースアクセスを加速させる",
			"ウイルスを検出するためのソフトウェア",
		},
		CorrectIndex: 1,
		Explanation:  "DMZは、インターネットに面したサーバーを内部ネットワークから分離して配置し、外部からの攻撃が内部ネットワークに直接到達するのを防ぎます。",
	},

	// インシデント対応と事業継続
	{
		Category:     models.CategoryIncidentResponse,
		Level:        1,
		QuestionNo:   1,
		QuestionText: "マルウェア感染が疑われるPCを発見したとき、最初に行うべきことはどれか。",
		Choices: []string{
			"PCを初期化する",
			"ネットワークから切り離し、担当部署へ報告する",
			"ウイルス対策ソフトをアンインストールする",
			"そのまま業務を続ける",
		},
		CorrectIndex: 1,
		Explanation:  "感染拡大を防ぐためにネットワークから隔離し、証拠保全の観点からも勝手に初期化せず速やかに担当部署へ報告します。",
	},
	{
		Category:     models.CategoryIncidentResponse,
		Level:        2,
		QuestionNo:   1,
		QuestionText: "CSIRTの役割として最も適切なものはどれか。",
		Choices: []string{
			"セキュリティインシデントへの対応を専門に行う",
			"会計監査を実施する",
			"製品の品質検査を行う",
			"人事評価を行う",
		},
		CorrectIndex: 0,
		Explanation:  "CSIRT（Computer Security Incident Response Team）は、インシデントの受付・分析・対応・再発防止を担う専門チームです。",
	},
	{
		Category:     models.CategoryIncidentResponse,
		Level:        3,
		QuestionNo:   1,
		QuestionText: "事業継続計画（BCP）におけるRTOの意味はどれか。",
		Choices: []string{
			"許容できるデータ損失の時間範囲",
			"業務を復旧させるまでの目標時間",
			"システムの平均故障間隔",
			"バックアップの取得間隔",
		},
		CorrectIndex: 1,
		Explanation:  "RTO（Recovery Time Objective）は、被災後に業務をどれだけの時間で復旧させるかの目標値です。許容データ損失はRPOで表します。",
	},

	// テクノロジ系基礎（システム・DB等）
	{
		Category:     models.CategoryTechnologyFoundation,
		Level:        1,
		QuestionNo:   1,
		QuestionText: "データベースのバックアップを定期的に取得する主な目的はどれか。",
		Choices: []string{
			"データベースの検索速度を上げるため",
			"障害発生時にデータを復旧できるようにするため",
			"データ容量を圧縮するため",
			"同時接続数を増やすため",
		},
		CorrectIndex: 1,
		Explanation:  "バックアップは、ハードウェア障害や操作ミス、ランサムウェア被害などが発生した際にデータを復旧するために取得します。",
	},
	{
		Category:     models.CategoryTechnologyFoundation,
		Level:        2,
		QuestionNo:   1,
		QuestionText: "RAID1の特徴として適切なものはどれか。",
		Choices: []string{
			"複数のディスクに同じデータを書き込み冗長性を確保する",
			"データを分散して書き込み高速化のみを図る",
			"パリティ情報のみを記録する",
			"1台のディスクでデータを二重化する",
		},
		CorrectIndex: 0,
		Explanation:  "RAID1（ミラーリング）は同じデータを複数のディスクへ書き込み、1台が故障してもデータを失わない構成です。",
	},
	{
		Category:     models.CategoryTechnologyFoundation,
		Level:        3,
		QuestionNo:   1,
		QuestionText: "トランザクションのACID特性のうち「原子性」の説明はどれか。",
		Choices: []string{
			"処理がすべて実行されるか、まったく実行されないかのいずれかになる",
			"処理の前後でデータの整合性が保たれる",
			"複数の処理が互いに干渉しない",
			"完了した処理の結果が失われない",
		},
		CorrectIndex: 0,
		Explanation:  "原子性（Atomicity）は、トランザクション内の処理が全部実行されるか全く実行されないかのどちらかであることを保証する特性です。",
	},
}
