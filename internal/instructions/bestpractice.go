package instructions

// bestPracticeCatalog holds one entry per product type: the core UI
// components, baseline features, UX patterns and technical requirements a
// product of that type is expected to ship with. Looked up by value, never
// mutated.
var bestPracticeCatalog = map[ProductType]BestPracticeTemplate{
	ProductSaaSTool: {
		Type:                  ProductSaaSTool,
		CoreComponents:        []string{"侧边栏导航", "主工作区", "数据表格", "搜索筛选", "设置面板"},
		EssentialFeatures:     []string{"用户权限管理", "数据导入导出", "批量操作", "操作历史", "通知系统"},
		UXPatterns:            []string{"面包屑导航", "操作确认弹窗", "批量选择", "快捷键支持", "拖拽排序"},
		TechnicalRequirements: []string{"响应式布局", "数据分页", "实时搜索", "操作撤销", "自动保存"},
	},
	ProductSocialPlatform: {
		Type:                  ProductSocialPlatform,
		CoreComponents:        []string{"顶部导航", "内容流", "用户头像", "互动按钮", "评论区域"},
		EssentialFeatures:     []string{"内容发布", "点赞评论", "用户关注", "消息通知", "内容分享"},
		UXPatterns:            []string{"无限滚动", "下拉刷新", "点赞动画", "表情选择器", "图片预览"},
		TechnicalRequirements: []string{"图片压缩上传", "实时消息推送", "内容懒加载", "敏感词过滤", "缓存策略"},
	},
	ProductEcommerce: {
		Type:                  ProductEcommerce,
		CoreComponents:        []string{"商品展示", "购物车", "筛选器", "支付界面", "订单管理"},
		EssentialFeatures:     []string{"商品搜索", "购物车管理", "订单追踪", "支付处理", "评价系统"},
		UXPatterns:            []string{"商品轮播", "规格选择", "价格计算", "库存提示", "推荐算法"},
		TechnicalRequirements: []string{"支付安全", "库存同步", "物流接口", "优惠计算", "订单状态机"},
	},
	ProductContentPlatform: {
		Type:                  ProductContentPlatform,
		CoreComponents:        []string{"编辑器", "内容列表", "分类标签", "搜索框", "发布按钮"},
		EssentialFeatures:     []string{"富文本编辑", "媒体管理", "内容分类", "发布调度", "SEO优化"},
		UXPatterns:            []string{"自动保存", "版本控制", "协作编辑", "内容预览", "标签管理"},
		TechnicalRequirements: []string{"富文本处理", "文件存储", "CDN集成", "搜索引擎", "版本管理"},
	},
	ProductDashboard: {
		Type:                  ProductDashboard,
		CoreComponents:        []string{"关键指标卡片", "图表组件", "筛选控件", "导出按钮", "刷新机制"},
		EssentialFeatures:     []string{"数据可视化", "时间范围选择", "报表导出", "数据钻取", "告警通知"},
		UXPatterns:            []string{"图表交互", "数据联动", "工具提示", "全屏查看", "自定义配置"},
		TechnicalRequirements: []string{"数据聚合", "实时更新", "图表库集成", "数据缓存", "权限控制"},
	},
	ProductProductivityTool: {
		Type:                  ProductProductivityTool,
		CoreComponents:        []string{"工具栏", "工作区", "快捷操作", "设置面板", "帮助系统"},
		EssentialFeatures:     []string{"效率工具", "自动化流程", "快捷键", "模板系统", "数据同步"},
		UXPatterns:            []string{"工具提示", "快捷操作", "批量处理", "模板应用", "自动完成"},
		TechnicalRequirements: []string{"性能优化", "跨平台", "插件系统", "数据备份", "API集成"},
	},
	ProductCommunication: {
		Type:                  ProductCommunication,
		CoreComponents:        []string{"消息列表", "聊天界面", "联系人", "文件传输", "视频通话"},
		EssentialFeatures:     []string{"即时消息", "群组聊天", "文件分享", "语音通话", "状态管理"},
		UXPatterns:            []string{"消息气泡", "输入状态", "已读回执", "表情包", "消息搜索"},
		TechnicalRequirements: []string{"实时通信", "消息加密", "文件存储", "推送通知", "离线消息"},
	},
	ProductFinance: {
		Type:                  ProductFinance,
		CoreComponents:        []string{"账户概览", "交易记录", "预算管理", "图表分析", "安全设置"},
		EssentialFeatures:     []string{"收支记录", "分类管理", "预算控制", "财务报表", "安全认证"},
		UXPatterns:            []string{"快速记账", "智能分类", "预算警告", "数据加密", "双重验证"},
		TechnicalRequirements: []string{"数据加密", "备份恢复", "银行API", "风控系统", "合规审计"},
	},
	ProductHealthFitness: {
		Type:                  ProductHealthFitness,
		CoreComponents:        []string{"数据仪表盘", "目标设置", "记录输入", "图表展示", "提醒通知"},
		EssentialFeatures:     []string{"健康记录", "目标跟踪", "数据分析", "提醒设置", "专家建议"},
		UXPatterns:            []string{"快速记录", "数据可视化", "趋势分析", "激励机制", "分享功能"},
		TechnicalRequirements: []string{"设备集成", "数据同步", "隐私保护", "算法推荐", "离线记录"},
	},
	ProductEducation: {
		Type:                  ProductEducation,
		CoreComponents:        []string{"课程列表", "视频播放器", "练习题", "进度追踪", "证书系统"},
		EssentialFeatures:     []string{"课程管理", "学习进度", "作业提交", "成绩查看", "讨论区"},
		UXPatterns:            []string{"进度条", "知识点导航", "互动练习", "学习路径", "成就系统"},
		TechnicalRequirements: []string{"视频流媒体", "学习分析", "防作弊机制", "移动适配", "离线支持"},
	},
	ProductOther: {
		Type:                  ProductOther,
		CoreComponents:        []string{"主导航", "内容区域", "操作按钮", "状态显示", "帮助信息"},
		EssentialFeatures:     []string{"基础功能", "用户界面", "数据管理", "系统设置", "用户帮助"},
		UXPatterns:            []string{"标准导航", "表单交互", "列表展示", "状态反馈", "错误处理"},
		TechnicalRequirements: []string{"基础架构", "数据存储", "用户认证", "错误处理", "性能监控"},
	},
}

// BestPracticeFor returns the catalog entry for the product type. Unknown
// types map to the generic entry so lookup is total.
func BestPracticeFor(productType ProductType) BestPracticeTemplate {
	if entry, ok := bestPracticeCatalog[productType]; ok {
		return entry
	}
	return bestPracticeCatalog[ProductOther]
}
