package achievement

const PointCenterIfoABI = `[
	{
		"inputs": [
			{"internalType": "address", "name": "_userAddress", "type": "address"},
			{"internalType": "address", "name": "_contractAddress", "type": "address"}
		],
		"name": "checkClaimStatus",
		"outputs": [{"internalType": "bool", "name": "", "type": "bool"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [{"internalType": "address", "name": "", "type": "address"}],
		"name": "ifos",
		"outputs": [
			{"internalType": "uint256", "name": "thresholdToClaim", "type": "uint256"},
			{"internalType": "uint256", "name": "campaignId", "type": "uint256"},
			{"internalType": "uint256", "name": "numberPoints", "type": "uint256"}
		],
		"stateMutability": "view",
		"type": "function"
	}
]`
