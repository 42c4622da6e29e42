package registry

// Fee tier tables. Concentrated-liquidity chains use the canonical
// four tiers; V2-style chains have a single flat tier and no usable
// spacing beyond 1.
var (
	v3FeeTiers = []FeeTier{
		{Bps: 100, TickSpacing: 1},
		{Bps: 500, TickSpacing: 10},
		{Bps: 3000, TickSpacing: 60},
		{Bps: 10000, TickSpacing: 200},
	}
	v2FeeTiers = []FeeTier{
		{Bps: 3000, TickSpacing: 1},
	}
	// Liquidity-Book bin steps, expressed in the same {fee, spacing} shape.
	binFeeTiers = []FeeTier{
		{Bps: 200, TickSpacing: 2},
		{Bps: 1000, TickSpacing: 10},
		{Bps: 2000, TickSpacing: 20},
	}
)

var chainOrder = []string{
	"ethereum", "bsc", "polygon", "arbitrum", "base", "avalanche", "zksync",
	"tron", "neo",
}

var chains = map[string]*ChainProfile{
	"ethereum": {
		ID:            "ethereum",
		ChainID:       1,
		Family:        UniswapV3Style,
		Router:        "0xE592427A0AEce92De3Edee1F18E0157C05861564",
		PositionMgr:   "0xC36442b4a4522E871399CD717aBDD847Ab11FE88",
		WrappedNative: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
		FeeCollector:  "0x5a52E96BAcdaBb82fd05763E25335261B270Efcb",
		Explorer:      "https://etherscan.io",
		FeeTiers:      v3FeeTiers,
		RPCEndpoints:  []string{"https://eth.llamarpc.com", "https://rpc.ankr.com/eth"},
		Tokens: []TokenDescriptor{
			{Symbol: "ETH", Name: "Ether", Address: NativeSentinel, Decimals: 18, Icon: "eth"},
			{Symbol: "WETH", Name: "Wrapped Ether", Address: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", Decimals: 18, Icon: "weth"},
			{Symbol: "USDC", Name: "USD Coin", Address: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", Decimals: 6, Icon: "usdc"},
			{Symbol: "USDT", Name: "Tether USD", Address: "0xdAC17F958D2ee523a2206206994597C13D831ec7", Decimals: 6, Icon: "usdt"},
			{Symbol: "DAI", Name: "Dai Stablecoin", Address: "0x6B175474E89094C44Da98b954EedeAC495271d0F", Decimals: 18, Icon: "dai"},
		},
	},
	"bsc": {
		ID:            "bsc",
		ChainID:       56,
		Family:        UniswapV2Style,
		Router:        "0x10ED43C718714eb63d5aA57B78B54704E256024E",
		WrappedNative: "0xbb4CdB9CBd36B01bD1cBaEbF2De08d9173bc095c",
		FeeCollector:  "0x5a52E96BAcdaBb82fd05763E25335261B270Efcb",
		Explorer:      "https://bscscan.com",
		FeeTiers:      v2FeeTiers,
		RPCEndpoints:  []string{"https://bsc-dataseed.binance.org"},
		Tokens: []TokenDescriptor{
			{Symbol: "BNB", Name: "BNB", Address: NativeSentinel, Decimals: 18, Icon: "bnb"},
			{Symbol: "WBNB", Name: "Wrapped BNB", Address: "0xbb4CdB9CBd36B01bD1cBaEbF2De08d9173bc095c", Decimals: 18, Icon: "wbnb"},
			{Symbol: "USDT", Name: "Tether USD", Address: "0x55d398326f99059fF775485246999027B3197955", Decimals: 18, Icon: "usdt"},
			{Symbol: "BUSD", Name: "BUSD", Address: "0xe9e7CEA3DedcA5984780Bafc599bD69ADd087D56", Decimals: 18, Icon: "busd"},
		},
	},
	"polygon": {
		ID:            "polygon",
		ChainID:       137,
		Family:        UniswapV3Style,
		Router:        "0xE592427A0AEce92De3Edee1F18E0157C05861564",
		PositionMgr:   "0xC36442b4a4522E871399CD717aBDD847Ab11FE88",
		WrappedNative: "0x0d500B1d8E8eF31E21C99d1Db9A6444d3ADf1270",
		FeeCollector:  "0x5a52E96BAcdaBb82fd05763E25335261B270Efcb",
		Explorer:      "https://polygonscan.com",
		FeeTiers:      v3FeeTiers,
		RPCEndpoints:  []string{"https://polygon-rpc.com"},
		Tokens: []TokenDescriptor{
			{Symbol: "POL", Name: "Polygon", Address: NativeSentinel, Decimals: 18, Icon: "pol"},
			{Symbol: "WPOL", Name: "Wrapped Polygon", Address: "0x0d500B1d8E8eF31E21C99d1Db9A6444d3ADf1270", Decimals: 18, Icon: "wpol"},
			{Symbol: "USDC", Name: "USD Coin", Address: "0x3c499c542cEF5E3811e1192ce70d8cC03d5c3359", Decimals: 6, Icon: "usdc"},
		},
	},
	"arbitrum": {
		ID:            "arbitrum",
		ChainID:       42161,
		Family:        UniswapV3Style,
		Router:        "0xE592427A0AEce92De3Edee1F18E0157C05861564",
		PositionMgr:   "0xC36442b4a4522E871399CD717aBDD847Ab11FE88",
		WrappedNative: "0x82aF49447D8a07e3bd95BD0d56f35241523fBab1",
		FeeCollector:  "0x5a52E96BAcdaBb82fd05763E25335261B270Efcb",
		Explorer:      "https://arbiscan.io",
		FeeTiers:      v3FeeTiers,
		RPCEndpoints:  []string{"https://arb1.arbitrum.io/rpc"},
		Tokens: []TokenDescriptor{
			{Symbol: "ETH", Name: "Ether", Address: NativeSentinel, Decimals: 18, Icon: "eth"},
			{Symbol: "WETH", Name: "Wrapped Ether", Address: "0x82aF49447D8a07e3bd95BD0d56f35241523fBab1", Decimals: 18, Icon: "weth"},
			{Symbol: "USDC", Name: "USD Coin", Address: "0xaf88d065e77c8cC2239327C5EDb3A432268e5831", Decimals: 6, Icon: "usdc"},
			{Symbol: "ARB", Name: "Arbitrum", Address: "0x912CE59144191C1204E64559FE8253a0e49E6548", Decimals: 18, Icon: "arb"},
		},
	},
	"base": {
		ID:            "base",
		ChainID:       8453,
		Family:        UniswapV3Style,
		Router:        "0x2626664c2603336E57B271c5C0b26F421741e481",
		PositionMgr:   "0x03a520b32C04BF3bEEf7BEb72E919cf822Ed34f1",
		WrappedNative: "0x4200000000000000000000000000000000000006",
		FeeCollector:  "0x5a52E96BAcdaBb82fd05763E25335261B270Efcb",
		Explorer:      "https://basescan.org",
		FeeTiers:      v3FeeTiers,
		RPCEndpoints:  []string{"https://mainnet.base.org"},
		Tokens: []TokenDescriptor{
			{Symbol: "ETH", Name: "Ether", Address: NativeSentinel, Decimals: 18, Icon: "eth"},
			{Symbol: "WETH", Name: "Wrapped Ether", Address: "0x4200000000000000000000000000000000000006", Decimals: 18, Icon: "weth"},
			{Symbol: "USDC", Name: "USD Coin", Address: "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", Decimals: 6, Icon: "usdc"},
		},
	},
	"avalanche": {
		ID:            "avalanche",
		ChainID:       43114,
		Family:        ConcentratedBinStyle,
		Router:        "0xb4315e873dBcf96Ffd0acd8EA43f689D8c20fB30",
		WrappedNative: "0xB31f66AA3C1e785363F0875A1B74E27b85FD66c7",
		FeeCollector:  "0x5a52E96BAcdaBb82fd05763E25335261B270Efcb",
		Explorer:      "https://snowtrace.io",
		FeeTiers:      binFeeTiers,
		RPCEndpoints:  []string{"https://api.avax.network/ext/bc/C/rpc"},
		Tokens: []TokenDescriptor{
			{Symbol: "AVAX", Name: "Avalanche", Address: NativeSentinel, Decimals: 18, Icon: "avax"},
			{Symbol: "WAVAX", Name: "Wrapped AVAX", Address: "0xB31f66AA3C1e785363F0875A1B74E27b85FD66c7", Decimals: 18, Icon: "wavax"},
			{Symbol: "USDC", Name: "USD Coin", Address: "0xB97EF9Ef8734C71904D8002F8b6Bc66Dd9c48a6E", Decimals: 6, Icon: "usdc"},
		},
	},
	"zksync": {
		ID:            "zksync",
		ChainID:       324,
		Family:        UniswapV2Style,
		Router:        "0x2da10A1e27bF85cEdD8FFb1AbBe97e53391C0295",
		WrappedNative: "0x5AEa5775959fBC2557Cc8789bC1bf90A239D9a91",
		FeeCollector:  "0x5a52E96BAcdaBb82fd05763E25335261B270Efcb",
		Explorer:      "https://explorer.zksync.io",
		FeeTiers:      v2FeeTiers,
		RPCEndpoints:  []string{"https://mainnet.era.zksync.io"},
		Tokens: []TokenDescriptor{
			{Symbol: "ETH", Name: "Ether", Address: NativeSentinel, Decimals: 18, Icon: "eth"},
			{Symbol: "WETH", Name: "Wrapped Ether", Address: "0x5AEa5775959fBC2557Cc8789bC1bf90A239D9a91", Decimals: 18, Icon: "weth"},
			{Symbol: "USDC", Name: "USD Coin", Address: "0x3355df6D4c9C3035724Fd0e3914dE96A5a83aaf4", Decimals: 6, Icon: "usdc"},
		},
	},
	"tron": {
		ID:            "tron",
		Family:        UniswapV2Style,
		Router:        "TKzxdSv2FZKQrEqkKVgp5DcwEXBEKMg2Ax",
		WrappedNative: "TNUC9Qb1rRpS5CbWLmNMxXBjyFoydXjWFR",
		FeeCollector:  "TVjsyZ7fYF3qLF6BQgPmTEZy1xrNNyVAAA",
		Explorer:      "https://tronscan.org/#",
		FeeTiers:      v2FeeTiers,
		RPCEndpoints:  []string{"https://api.trongrid.io"},
		Tokens: []TokenDescriptor{
			{Symbol: "TRX", Name: "TRON", Address: NativeSentinel, Decimals: 6, Icon: "trx"},
			{Symbol: "WTRX", Name: "Wrapped TRX", Address: "TNUC9Qb1rRpS5CbWLmNMxXBjyFoydXjWFR", Decimals: 6, Icon: "wtrx"},
			{Symbol: "USDT", Name: "Tether USD", Address: "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t", Decimals: 6, Icon: "usdt"},
		},
	},
	"neo": {
		ID:            "neo",
		Family:        NEP17Style,
		Router:        "0xf970f4ccecd765b63732b821775dc38c25d74f23",
		WrappedNative: "0x48c40d4666f93408be1bef038b6722404d9a4c2a",
		FeeCollector:  "NhGomBpYnKXArr85nt6mWL58dXWYAjkUnd",
		Explorer:      "https://explorer.onegate.space",
		FeeTiers:      v2FeeTiers,
		RPCEndpoints:  []string{"https://mainnet1.neo.coz.io:443"},
		Tokens: []TokenDescriptor{
			{Symbol: "NEO", Name: "NEO", Address: NativeSentinel, Decimals: 0, Icon: "neo"},
			{Symbol: "bNEO", Name: "BurgerNEO", Address: "0x48c40d4666f93408be1bef038b6722404d9a4c2a", Decimals: 8, Icon: "bneo"},
			{Symbol: "GAS", Name: "GAS", Address: "0xd2a4cff31913016155e38e474a2c06d08be276cf", Decimals: 8, Icon: "gas"},
			{Symbol: "fUSDT", Name: "Flamingo USDT", Address: "0xcd48b160c1bbc9d74997b803b9a7ad50a4bef020", Decimals: 6, Icon: "fusdt"},
		},
	},
}
