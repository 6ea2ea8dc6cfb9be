package ethereum

// MarketABI covers the marketplace methods the client reads and writes.
const MarketABI = `[
	{
		"inputs": [],
		"name": "nextListingId",
		"outputs": [{"name": "", "type": "uint256"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [{"name": "", "type": "uint256"}],
		"name": "listings",
		"outputs": [
			{"name": "seller", "type": "address"},
			{"name": "amountSEWH", "type": "uint256"},
			{"name": "priceUSDC", "type": "uint256"},
			{"name": "active", "type": "bool"}
		],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [
			{"name": "amountSEWH", "type": "uint256"},
			{"name": "priceUSDC", "type": "uint256"}
		],
		"name": "listEnergy",
		"outputs": [],
		"stateMutability": "nonpayable",
		"type": "function"
	},
	{
		"inputs": [{"name": "listingId", "type": "uint256"}],
		"name": "buyEnergy",
		"outputs": [],
		"stateMutability": "nonpayable",
		"type": "function"
	}
]`

// ERC20ABI covers the allowance surface shared by the energy and payment tokens.
const ERC20ABI = `[
	{
		"inputs": [
			{"name": "owner", "type": "address"},
			{"name": "spender", "type": "address"}
		],
		"name": "allowance",
		"outputs": [{"name": "", "type": "uint256"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [
			{"name": "spender", "type": "address"},
			{"name": "amount", "type": "uint256"}
		],
		"name": "approve",
		"outputs": [{"name": "", "type": "bool"}],
		"stateMutability": "nonpayable",
		"type": "function"
	}
]`
